package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"laundry-scout.backend/pkg/logger"
)

// LoggerMiddleware logs HTTP requests using the structured logger
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		// RequestIDMiddleware has already stored the request ID in the
		// request context by the time we log.
		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), latency, c.ClientIP())
	}
}
