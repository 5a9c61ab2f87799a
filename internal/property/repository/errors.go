package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert property")
	ErrFailedToGet    = errors.New("failed to get property")
	ErrFailedToList   = errors.New("failed to list properties")
	ErrFailedToCount  = errors.New("failed to count properties")
	ErrFailedToUpdate = errors.New("failed to update property")
	ErrFailedToDelete = errors.New("failed to delete property")
	ErrUniqueSlug     = errors.New("slug already taken")
	ErrUnknownFilter  = errors.New("unsupported filter predicate")
)
