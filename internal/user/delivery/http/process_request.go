package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "property-listing/pkg/errors"
)

// processLoginReq binds the login request body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationHTTPError("request body must be a JSON object")
	}
	return req, nil
}
