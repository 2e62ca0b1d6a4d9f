// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-admin/internal/config"
	"github.com/your-org/storefront-admin/internal/pkg/auth"
)

// AuthMiddleware creates session token authentication middleware
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		// Extract token from header
		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		// Validate session token
		claims, err := jwtManager.ValidateSessionToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// Store session information in context
		c.Set("username", claims.Username)
		c.Set("upstream_token", claims.UpstreamToken)
		c.Set("session_id", claims.Subject)
		c.Set("token_claims", claims)

		c.Next()
	}
}

// GetUsernameFromContext extracts the admin username from gin context
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}
	return username.(string), true
}

// GetUpstreamTokenFromContext extracts the upstream API token from gin context
func GetUpstreamTokenFromContext(c *gin.Context) (string, bool) {
	token, exists := c.Get("upstream_token")
	if !exists {
		return "", false
	}
	return token.(string), true
}

// GetSessionIDFromContext extracts the session identifier from gin context.
// The session id keys the Redis cart, so every request of one admin login
// sees the same counter cart.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		return "", false
	}
	return sessionID.(string), true
}
