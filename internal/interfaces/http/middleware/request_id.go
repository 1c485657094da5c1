package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"laundry-scout.backend/pkg/utils"
)

const RequestIDKey = "request_id"

// RequestIDMiddleware tags each request with a unique ID, honoring an
// incoming X-Request-ID header when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = utils.GenerateUUIDv7().String()
		}

		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)

		// The logger reads the ID back out of the request context.
		ctx := context.WithValue(c.Request.Context(), "request_id", id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
