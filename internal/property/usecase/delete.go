package usecase

import (
	"context"

	"property-listing/internal/model"
	"property-listing/internal/property"
)

// Delete removes a property under the same authorization rule as Update.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.getByID(ctx, "Delete", id)
	if err != nil {
		return err
	}
	if !canModify(sc, existing) {
		return property.ErrModifyForbidden
	}

	if err := uc.repo.DeleteProperty(ctx, existing.ID); err != nil {
		uc.l.Errorf(ctx, "property/usecase.Delete DeleteProperty: %v", err)
		return err
	}

	uc.bySlug.Remove(existing.Slug)
	uc.publish(ctx, property.EventDeleted, existing)
	return nil
}
