// internal/interfaces/http/handlers/common.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-admin/internal/upstream"
)

// respondUpstreamError translates a failed upstream call into a response.
// Upstream rejections keep their status and message; transport failures
// become a 502 so callers can tell the gateway from the commerce API.
func respondUpstreamError(c *gin.Context, err error) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			// The upstream sometimes rejects with success=false on a 200.
			status = http.StatusBadRequest
		}
		message := apiErr.Message
		if message == "" {
			message = "Upstream request failed"
		}
		c.JSON(status, gin.H{
			"error": message,
		})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{
		"error": "Upstream service unavailable",
	})
}

// requireUpstreamToken pulls the upstream token stored by the auth
// middleware; a missing token aborts with 401.
func requireUpstreamToken(c *gin.Context) (string, bool) {
	token, exists := c.Get("upstream_token")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return "", false
	}
	return token.(string), true
}

// sessionIDFromContext returns the cart session key for this login.
func sessionIDFromContext(c *gin.Context) string {
	sessionID, exists := c.Get("session_id")
	if !exists {
		return ""
	}
	return sessionID.(string)
}

// forwardJSON relays a raw JSON body to one upstream write endpoint. The
// gateway does not own these payload schemas; it passes them through.
func forwardJSON(c *gin.Context, call func(token string, payload json.RawMessage) (*upstream.Envelope, error)) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	var payload json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	env, err := call(token, payload)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": env.Message,
		"data":    env.Data,
	})
}
