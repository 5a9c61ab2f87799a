package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"property-listing/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates or creates a request id, echoes it in the response
// and attaches it to the context so log lines carry it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
