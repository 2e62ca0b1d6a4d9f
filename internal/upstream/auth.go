// internal/upstream/auth.go
package upstream

import (
	"context"
	"net/http"
)

// LoginRequest is the admin-login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the register payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for an upstream token. Credential
// verification is entirely the upstream's concern.
func (c *Client) Login(ctx context.Context, req LoginRequest) (string, *Envelope, error) {
	env, err := c.do(ctx, "", http.MethodPost, "admin-login", nil, req)
	if err != nil {
		return "", env, err
	}
	return env.Token, env, nil
}

// Register creates a new admin account upstream.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Envelope, error) {
	return c.do(ctx, "", http.MethodPost, "register", nil, req)
}
