package usecase

import (
	"context"

	"property-listing/internal/model"
	"property-listing/internal/property"
	"property-listing/pkg/slug"
	"property-listing/pkg/validation"
)

const (
	msgSlugNotDerivable = "title must contain at least one letter or digit"
	msgOwnerNotFound    = "owner: user not found"
)

// propertyFields are the validated, user-editable columns.
type propertyFields struct {
	Title       string  `json:"title"       validate:"required,max=255"`
	Description string  `json:"description" validate:"max=5000"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
}

// validate collects every violated field constraint. The returned Error is
// never nil so callers can keep adding messages.
func (uc *implUseCase) validate(f propertyFields) *validation.Error {
	return validation.NewError(uc.validator.Struct(f)...)
}

func canCreate(sc model.Scope) bool {
	return sc.HasRole(model.RoleAdmin, model.RolePropertyManager)
}

func canModify(sc model.Scope, p property.Property) bool {
	if sc.IsAdmin() {
		return true
	}
	return sc.HasRole(model.RolePropertyManager) && sc.UserID != "" && sc.UserID == p.OwnerID
}

// resolveSlug picks the slug to store. A submitted slug that still has
// content after normalisation is kept. Otherwise the slug follows the title
// whenever the title changed or no slug exists yet.
func resolveSlug(submitted *string, title, storedTitle, storedSlug string) string {
	if submitted != nil {
		if s := slug.Generate(*submitted); s != "" {
			return s
		}
	}
	if storedSlug == "" || slug.NeedsRegeneration(title, storedTitle) {
		return slug.Generate(title)
	}
	return storedSlug
}

// publish emits a lifecycle event. Failures are only logged: the write has
// already been committed.
func (uc *implUseCase) publish(ctx context.Context, eventType string, p property.Property) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, property.NewEvent(eventType, p, uc.now())); err != nil {
		uc.l.Warnf(ctx, "property/usecase.publish %s %s: %v", eventType, p.ID, err)
	}
}

// coalesce returns *newVal when provided, otherwise existing. Used for partial updates.
func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func stringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
