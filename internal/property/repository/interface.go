package repository

import (
	"context"

	"property-listing/internal/property"
)

//go:generate mockery --name Repository
type Repository interface {
	PropertyRepository
}

// PropertyRepository defines all data access methods for the Property entity.
type PropertyRepository interface {
	CreateProperty(ctx context.Context, opt CreatePropertyOptions) (property.Property, error)
	GetOneProperty(ctx context.Context, opt GetOnePropertyOptions) (property.Property, error)
	ListProperties(ctx context.Context, opt ListPropertiesOptions) ([]property.Property, error)
	// CountProperties returns paginator.ErrNoResult when the count query yields no row.
	CountProperties(ctx context.Context, opt CountPropertiesOptions) (int64, error)
	UpdateProperty(ctx context.Context, opt UpdatePropertyOptions) (property.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}
