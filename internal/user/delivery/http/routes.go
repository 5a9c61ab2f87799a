package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the auth endpoints. Login is public.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
	}
}
