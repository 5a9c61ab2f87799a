package usecase

import (
	"context"

	"property-listing/internal/property"
	repo "property-listing/internal/property/repository"
	"property-listing/pkg/paginator"
)

// List returns one page of properties matching the filter, plus page metadata.
func (uc *implUseCase) List(ctx context.Context, input property.ListInput) (property.ListOutput, error) {
	preds := property.BuildPredicates(input.Filter)
	page := input.Page

	props, err := uc.repo.ListProperties(ctx, repo.ListPropertiesOptions{
		Predicates: preds,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "property/usecase.List ListProperties: %v", err)
		return property.ListOutput{}, err
	}

	meta, err := paginator.Paginate(page, func() (int64, error) {
		return uc.repo.CountProperties(ctx, repo.CountPropertiesOptions{Predicates: preds})
	})
	if err != nil {
		uc.l.Errorf(ctx, "property/usecase.List CountProperties: %v", err)
		return property.ListOutput{}, err
	}

	return property.ListOutput{Properties: props, Meta: meta}, nil
}
