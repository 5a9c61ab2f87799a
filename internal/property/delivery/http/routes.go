package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Reads are public; writes require a bearer token via auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, auth gin.HandlerFunc) {
	props := rg.Group("/properties")
	{
		props.GET("", h.List)
		props.GET("/:slug", h.Detail)
		props.POST("", auth, h.Create)
		props.PUT("/:id", auth, h.Update)
		props.DELETE("/:id", auth, h.Delete)
	}
}
