package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"property-listing/internal/model"
	"property-listing/pkg/response"
	"property-listing/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores the actor as model.Scope in the
// request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			response.Unauthorized(c, "Missing bearer token")
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			if errors.Is(err, scope.ErrExpiredToken) {
				response.Unauthorized(c, "Token has expired")
				return
			}
			response.Unauthorized(c, "Invalid token")
			return
		}

		sc := model.Scope{
			UserID: payload.UserID(),
			Email:  payload.Email,
			Roles:  payload.Roles,
		}
		c.Request = c.Request.WithContext(model.SetScopeToContext(ctx, sc))
		c.Next()
	}
}
