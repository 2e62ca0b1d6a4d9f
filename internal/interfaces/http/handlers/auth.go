// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-admin/internal/config"
	"github.com/your-org/storefront-admin/internal/pkg/auth"
	"github.com/your-org/storefront-admin/internal/upstream"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	upstream   *upstream.Client
	jwtManager *auth.JWTManager
	config     *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(upstreamClient *upstream.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		upstream:   upstreamClient,
		jwtManager: auth.NewJWTManager(cfg),
		config:     cfg,
	}
}

// Login handles POST /admin-login. Credentials go straight to the upstream;
// on success the gateway mints its own session token wrapping the upstream
// one, so later requests never carry raw credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req upstream.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	upstreamToken, _, err := h.upstream.Login(c.Request.Context(), req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	if upstreamToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	sessionToken, err := h.jwtManager.GenerateSessionToken(req.Username, upstreamToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"token":      sessionToken,
			"username":   req.Username,
			"expires_in": int(h.config.JWT.SessionTokenExpiry.Seconds()),
		},
	})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req upstream.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	env, err := h.upstream.Register(c.Request.Context(), req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": env.Message,
	})
}

// Logout handles POST /logout. Session tokens are stateless, so logout is
// only an acknowledgement; the client drops the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
