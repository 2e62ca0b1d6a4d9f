// internal/upstream/client.go
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-admin/internal/config"
)

// Client talks to the external commerce API that owns all persistence and
// auth issuance. Every call carries the caller's upstream token; the client
// itself holds no credentials.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Envelope is the upstream's standard response wrapper.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`

	// Endpoint-specific extras.
	Token            string      `json:"token,omitempty"`
	Count            json.Number `json:"count,omitempty"`
	TransactionCount json.Number `json:"transaction_count,omitempty"`
}

// APIError is a non-success reply from the upstream API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream API returned status %d", e.StatusCode)
}

// NewClient creates a client for the configured upstream API.
func NewClient(cfg config.UpstreamConfig, log logrus.FieldLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// get performs a GET request and decodes the envelope.
func (c *Client) get(ctx context.Context, token, path string, query url.Values) (*Envelope, error) {
	return c.do(ctx, token, http.MethodGet, path, query, nil)
}

// do performs a request with an optional JSON body and decodes the
// envelope. A decoded envelope with success=false is returned as an
// *APIError carrying the upstream's message.
func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body any) (*Envelope, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		}).Error("Upstream request failed")
		return nil, err
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &APIError{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("failed to decode upstream response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		c.log.WithFields(logrus.Fields{
			"method":      method,
			"path":        path,
			"status_code": resp.StatusCode,
			"message":     env.Message,
		}).Warn("Upstream request rejected")
		return &env, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	return &env, nil
}

// decodeData unmarshals an envelope's data payload into out.
func decodeData(env *Envelope, out any) error {
	if len(env.Data) == 0 {
		return fmt.Errorf("upstream response has no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode upstream data: %w", err)
	}
	return nil
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("limit", fmt.Sprintf("%d", limit))
	return q
}
