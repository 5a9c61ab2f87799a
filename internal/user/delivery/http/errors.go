package http

import (
	"errors"
	"net/http"

	"property-listing/internal/user"
	pkgErrors "property-listing/pkg/errors"
	"property-listing/pkg/validation"
)

// mapError translates user use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return pkgErrors.NewValidationHTTPError(verr.Messages...)
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, user.ErrDuplicateEmail):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Email already registered")
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "User not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
