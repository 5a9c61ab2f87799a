package usecase

import (
	"context"
	"errors"

	"property-listing/internal/model"
	"property-listing/internal/property"
	repo "property-listing/internal/property/repository"
)

// Update applies a partial update. Only the owning property manager or an
// admin may modify a property.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input property.UpdateInput) (property.Property, error) {
	existing, err := uc.getByID(ctx, "Update", input.ID)
	if err != nil {
		return property.Property{}, err
	}
	if !canModify(sc, existing) {
		return property.Property{}, property.ErrModifyForbidden
	}

	fields := propertyFields{
		Title:       coalesce(input.Title, existing.Title),
		Description: coalesce(input.Description, existing.Description),
		Price:       coalesce(input.Price, existing.Price),
	}
	verr := uc.validate(fields)

	// Pre-save slug step: follow the title unless a slug was submitted.
	s := resolveSlug(input.Slug, fields.Title, existing.Title, existing.Slug)
	if s == "" && fields.Title != "" {
		verr.Add(msgSlugNotDerivable)
	}
	if err := verr.OrNil(); err != nil {
		return property.Property{}, err
	}

	p, err := uc.repo.UpdateProperty(ctx, repo.UpdatePropertyOptions{
		ID:          existing.ID,
		Title:       fields.Title,
		Description: fields.Description,
		Price:       fields.Price,
		Slug:        s,
	})
	if err != nil {
		if errors.Is(err, repo.ErrUniqueSlug) {
			return property.Property{}, property.ErrDuplicateSlug
		}
		uc.l.Errorf(ctx, "property/usecase.Update UpdateProperty: %v", err)
		return property.Property{}, err
	}
	if p.ID == "" {
		// Deleted concurrently.
		return property.Property{}, property.ErrPropertyNotFound
	}

	uc.bySlug.Remove(existing.Slug)
	uc.bySlug.Remove(p.Slug)
	uc.publish(ctx, property.EventUpdated, p)
	return p, nil
}
