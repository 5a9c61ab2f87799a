package usecase

import (
	"context"
	"errors"

	"property-listing/internal/model"
	"property-listing/internal/property"
	repo "property-listing/internal/property/repository"
	"property-listing/internal/user"
	"property-listing/pkg/validation"
)

// Create stores a new property owned by the actor, or by input.OwnerID when
// the actor is an admin.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input property.CreateInput) (property.Property, error) {
	if !canCreate(sc) {
		return property.Property{}, property.ErrCreateForbidden
	}

	ownerID := sc.UserID
	if input.OwnerID != "" && input.OwnerID != sc.UserID {
		if !sc.IsAdmin() {
			return property.Property{}, property.ErrOwnerForbidden
		}
		ownerID = input.OwnerID
	}

	fields := propertyFields{Title: input.Title, Description: input.Description, Price: input.Price}
	verr := uc.validate(fields)

	s := resolveSlug(stringPtrOrNil(input.Slug), input.Title, "", "")
	if s == "" && input.Title != "" {
		verr.Add(msgSlugNotDerivable)
	}

	if err := uc.checkOwner(ctx, ownerID, verr); err != nil {
		return property.Property{}, err
	}
	if err := verr.OrNil(); err != nil {
		return property.Property{}, err
	}

	p, err := uc.repo.CreateProperty(ctx, repo.CreatePropertyOptions{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Slug:        s,
		OwnerID:     ownerID,
	})
	if err != nil {
		if errors.Is(err, repo.ErrUniqueSlug) {
			return property.Property{}, property.ErrDuplicateSlug
		}
		uc.l.Errorf(ctx, "property/usecase.Create CreateProperty: %v", err)
		return property.Property{}, err
	}

	uc.bySlug.Remove(p.Slug)
	uc.publish(ctx, property.EventCreated, p)
	return p, nil
}

// checkOwner resolves the owner through the user collaborator. An unknown
// owner is reported on verr; lookup failures are returned.
func (uc *implUseCase) checkOwner(ctx context.Context, ownerID string, verr *validation.Error) error {
	if _, err := uc.userUC.Detail(ctx, ownerID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			verr.Add(msgOwnerNotFound)
			return nil
		}
		uc.l.Errorf(ctx, "property/usecase.checkOwner Detail: %v", err)
		return err
	}
	return nil
}
