package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "property-listing/pkg/errors"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with the created entity.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends 204 without a body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// List sends 200 with the {data, meta} envelope. A nil slice is sent as [].
func List[T any](c *gin.Context, data []T, meta any) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResp{Data: data, Meta: meta})
}

// Error sends the status and message carried by an *errors.HTTPError.
// Anything else is reported as 500 without leaking the cause.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = pkgErrors.ErrInternalServerError
	}

	if len(httpErr.Details) > 0 {
		c.AbortWithStatusJSON(httpErr.StatusCode, ErrorResp{Error: httpErr.Details})
		return
	}
	c.AbortWithStatusJSON(httpErr.StatusCode, ErrorResp{Error: httpErr.Message})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResp{Error: msg})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, ErrorResp{Error: msg})
}
