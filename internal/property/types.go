package property

import (
	"time"

	"property-listing/pkg/paginator"
)

// --- Property Domain Model ---

// Property is a real-estate listing. OwnerID references a user.User.
type Property struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Slug        string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type ListInput struct {
	Filter FilterCriteria
	Page   paginator.PageRequest
}

type CreateInput struct {
	Title       string
	Description string
	Price       float64
	// Slug, when non-empty, is kept (normalised) instead of being derived from Title.
	Slug string
	// OwnerID defaults to the acting user. Only admins may set another owner.
	OwnerID string
}

// UpdateInput is a partial update: nil fields keep their stored value.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Slug        *string
	Price       *float64
}

// --- UseCase Outputs ---

type ListOutput struct {
	Properties []Property
	Meta       paginator.PageResult
}
