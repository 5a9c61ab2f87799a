package property

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrDuplicateSlug    = errors.New("a property with this slug already exists")
	ErrForbidden        = errors.New("forbidden")
)

// ForbiddenError is a denial with a client-facing reason.
// It matches ErrForbidden under errors.Is.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

var (
	ErrCreateForbidden = &ForbiddenError{Reason: "only admins and property managers can create properties"}
	ErrModifyForbidden = &ForbiddenError{Reason: "you are not allowed to modify this property"}
	ErrOwnerForbidden  = &ForbiddenError{Reason: "only admins can assign a property to another owner"}
)
