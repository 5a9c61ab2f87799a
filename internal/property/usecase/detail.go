package usecase

import (
	"context"

	"property-listing/internal/property"
	repo "property-listing/internal/property/repository"
)

// DetailBySlug returns the property with the given slug. Hits are cached.
func (uc *implUseCase) DetailBySlug(ctx context.Context, slug string) (property.Property, error) {
	if slug == "" {
		return property.Property{}, property.ErrPropertyNotFound
	}
	if p, ok := uc.bySlug.Get(slug); ok {
		return p, nil
	}

	p, err := uc.repo.GetOneProperty(ctx, repo.GetOnePropertyOptions{Slug: slug})
	if err != nil {
		uc.l.Errorf(ctx, "property/usecase.DetailBySlug GetOneProperty: %v", err)
		return property.Property{}, err
	}
	if p.ID == "" {
		return property.Property{}, property.ErrPropertyNotFound
	}

	uc.bySlug.Add(slug, p)
	return p, nil
}

// getByID loads a property for modification.
func (uc *implUseCase) getByID(ctx context.Context, op, id string) (property.Property, error) {
	if id == "" {
		return property.Property{}, property.ErrPropertyNotFound
	}
	p, err := uc.repo.GetOneProperty(ctx, repo.GetOnePropertyOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "property/usecase.%s GetOneProperty: %v", op, err)
		return property.Property{}, err
	}
	if p.ID == "" {
		return property.Property{}, property.ErrPropertyNotFound
	}
	return p, nil
}
