// internal/upstream/tax.go
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/your-org/storefront-admin/internal/domain/catalog"
)

// Tax-rate configuration lives entirely upstream; the gateway proxies the
// management endpoints and leaves the record schema alone.

// FetchTaxes retrieves all configured tax rates.
func (c *Client) FetchTaxes(ctx context.Context, token string) (json.RawMessage, error) {
	env, err := c.get(ctx, token, "tax", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// FetchCountryTax retrieves a single country-level tax record.
func (c *Client) FetchCountryTax(ctx context.Context, token string, id catalog.ID) (json.RawMessage, error) {
	env, err := c.get(ctx, token, fmt.Sprintf("tax/country/%s", id), nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// FetchStateTax retrieves a single state-level tax record.
func (c *Client) FetchStateTax(ctx context.Context, token string, id catalog.ID) (json.RawMessage, error) {
	env, err := c.get(ctx, token, fmt.Sprintf("tax/state/%s", id), nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CreateCountryTax creates a country-level tax rate.
func (c *Client) CreateCountryTax(ctx context.Context, token string, payload json.RawMessage) (*Envelope, error) {
	return c.do(ctx, token, http.MethodPost, "tax/country", nil, payload)
}

// CreateStateTax creates a state-level tax rate.
func (c *Client) CreateStateTax(ctx context.Context, token string, payload json.RawMessage) (*Envelope, error) {
	return c.do(ctx, token, http.MethodPost, "tax/state", nil, payload)
}

// DeleteTax deletes a tax record; country and state share the endpoint.
func (c *Client) DeleteTax(ctx context.Context, token string, id catalog.ID) (*Envelope, error) {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("tax/%s", id), nil, nil)
}
