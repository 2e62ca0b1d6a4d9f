package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-admin/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront-admin-test"},
		JWT: config.JWTConfig{
			Secret:             "0123456789abcdef0123456789abcdef",
			SessionTokenExpiry: time.Hour,
		},
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateSessionToken("admin", "upstream-jwt")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "upstream-jwt", claims.UpstreamToken)
	assert.Equal(t, "session", claims.TokenType)
	assert.Equal(t, "admin:admin", claims.Subject)
}

func TestValidateSessionToken_WrongSecret(t *testing.T) {
	m := NewJWTManager(testConfig())
	token, err := m.GenerateSessionToken("admin", "upstream-jwt")
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "ffffffffffffffffffffffffffffffff"

	_, err = NewJWTManager(other).ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateSessionToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.SessionTokenExpiry = -time.Minute
	m := NewJWTManager(cfg)

	token, err := m.GenerateSessionToken("admin", "upstream-jwt")
	require.NoError(t, err)

	_, err = m.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	// The dashboard has historically sent the raw token too.
	assert.Equal(t, "abc123", ExtractTokenFromHeader("abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}
