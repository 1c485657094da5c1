package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"laundry-scout.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time the lock is held while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long the cached response is kept
	RetentionDuration = 24 * time.Hour
)

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the cached response when a request
// carries an Idempotency-Key it has seen before. Review decisions use
// this so a double-submitted approval settles exactly once.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		adminID, _ := GetAdminID(c)
		storageKey := fmt.Sprintf("idempotency:%s:%s", adminID, key)
		ctx := c.Request.Context()

		val, err := redisGet(ctx, storageKey)
		if err == nil {
			if val == "processing" {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"error": "Request already in progress",
					"code":  "ERR_IDEMPOTENCY_CONFLICT",
				})
				return
			}

			c.Header("Content-Type", "application/json")
			c.Header("X-Idempotency-Hit", "true")
			c.String(http.StatusOK, val)
			c.Abort()
			return
		} else if err.Error() != "redis: nil" {
			// Redis trouble: let the request through rather than block reviews.
			c.Next()
			return
		}

		success, err := redisSetNX(ctx, storageKey, "processing", LockDuration)
		if err != nil || !success {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "Request in progress",
			})
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			_ = redisSet(ctx, storageKey, w.body.String(), RetentionDuration)
		} else {
			// Drop the lock so the caller may retry a failed decision.
			_ = redisDel(ctx, storageKey)
		}
	}
}
