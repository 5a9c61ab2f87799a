package repository

import "property-listing/internal/property"

// CreatePropertyOptions holds parameters for inserting a new Property.
type CreatePropertyOptions struct {
	Title       string
	Description string
	Price       float64
	Slug        string
	OwnerID     string
}

// GetOnePropertyOptions holds filter parameters for fetching a single Property.
// All non-empty fields are applied as AND conditions.
type GetOnePropertyOptions struct {
	ID   string
	Slug string
}

// ListPropertiesOptions holds the filter and window for listing Properties.
type ListPropertiesOptions struct {
	Predicates []property.Predicate
	Limit      int
	Offset     int
}

type CountPropertiesOptions struct {
	Predicates []property.Predicate
}

// UpdatePropertyOptions carries the full, already merged row.
type UpdatePropertyOptions struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Slug        string
}
