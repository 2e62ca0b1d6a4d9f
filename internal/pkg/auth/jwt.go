// internal/pkg/auth/jwt.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/your-org/storefront-admin/internal/config"
)

// Claims represents the gateway's session token claims. The upstream token
// obtained at login rides inside so handlers can replay it on proxied
// calls; the gateway never stores it anywhere else.
type Claims struct {
	Username      string `json:"username"`
	UpstreamToken string `json:"upstream_token"`
	TokenType     string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTManager handles session token operations
type JWTManager struct {
	config *config.Config
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		config: cfg,
	}
}

// GenerateSessionToken mints a session token wrapping the upstream token.
func (j *JWTManager) GenerateSessionToken(username, upstreamToken string) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		Username:      username,
		UpstreamToken: upstreamToken,
		TokenType:     "session",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.config.JWT.SessionTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.config.App.Name,
			Subject:   fmt.Sprintf("admin:%s", username),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.JWT.Secret))
}

// ValidateSessionToken validates and parses a session token.
func (j *JWTManager) ValidateSessionToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.config.JWT.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.TokenType != "session" {
		return nil, fmt.Errorf("invalid token type: expected session, got %s", claims.TokenType)
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts a token from an Authorization header.
// Both "Bearer <token>" and a bare token are accepted; the dashboard has
// sent both over its lifetime.
func ExtractTokenFromHeader(authHeader string) string {
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return authHeader
}
