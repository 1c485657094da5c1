package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"laundry-scout.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AdminIDKey is the context key for the authenticated admin ID
	AdminIDKey = "adminId"
	// AdminUsernameKey is the context key for the authenticated admin username
	AdminUsernameKey = "adminUsername"
)

// AuthMiddleware validates the bearer token and stores the admin
// identity in the request context.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == jwt.ErrExpiredToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		c.Set(AdminIDKey, claims.AdminID)
		c.Set(AdminUsernameKey, claims.Username)

		c.Next()
	}
}

// GetAdminID gets the authenticated admin ID from context
func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(AdminIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}

// GetAdminUsername gets the authenticated admin username from context
func GetAdminUsername(c *gin.Context) (string, bool) {
	val, exists := c.Get(AdminUsernameKey)
	if !exists {
		return "", false
	}
	username, ok := val.(string)
	return username, ok
}
