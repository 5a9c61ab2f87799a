package http

import (
	"errors"
	"net/http"

	"property-listing/internal/property"
	pkgErrors "property-listing/pkg/errors"
	"property-listing/pkg/validation"
)

// mapError translates property use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a generic 500; the cause is only logged.
func (h *handler) mapError(err error) error {
	var (
		verr      *validation.Error
		forbidden *property.ForbiddenError
	)
	switch {
	case errors.As(err, &verr):
		return pkgErrors.NewValidationHTTPError(verr.Messages...)
	case errors.As(err, &forbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, forbidden.Reason)
	case errors.Is(err, property.ErrForbidden):
		return pkgErrors.ErrForbidden
	case errors.Is(err, property.ErrPropertyNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Property not found")
	case errors.Is(err, property.ErrDuplicateSlug):
		return pkgErrors.NewHTTPError(http.StatusConflict, "A property with this slug already exists")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
