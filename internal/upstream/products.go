// internal/upstream/products.go
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/your-org/storefront-admin/internal/domain/catalog"
)

// FetchProducts retrieves one page of the admin product catalog. The second
// return value is the catalog-wide total the upstream reports alongside each
// page; when the reply carries no count, the page length stands in for it.
func (c *Client) FetchProducts(ctx context.Context, token string, page, limit int) ([]catalog.Product, int, error) {
	env, err := c.get(ctx, token, "admin-product-fetch", pageQuery(page, limit))
	if err != nil {
		return nil, 0, err
	}

	var products []catalog.Product
	if err := decodeData(env, &products); err != nil {
		return nil, 0, err
	}

	total := len(products)
	if n, err := env.Count.Int64(); err == nil && n >= 0 {
		total = int(n)
	}
	return products, total, nil
}

// FetchProduct retrieves a single product by id.
func (c *Client) FetchProduct(ctx context.Context, token string, id catalog.ID) (*catalog.Product, error) {
	env, err := c.get(ctx, token, fmt.Sprintf("user-product/%s", id), nil)
	if err != nil {
		return nil, err
	}

	var product catalog.Product
	if err := decodeData(env, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct forwards a product payload to the upstream. The gateway
// does not own the product schema, so the body passes through untouched.
func (c *Client) CreateProduct(ctx context.Context, token string, payload json.RawMessage) (*Envelope, error) {
	return c.do(ctx, token, http.MethodPost, "create-product", nil, payload)
}

// UpdateProduct forwards a product update payload.
func (c *Client) UpdateProduct(ctx context.Context, token string, id catalog.ID, payload json.RawMessage) (*Envelope, error) {
	return c.do(ctx, token, http.MethodPut, fmt.Sprintf("update-product/%s", id), nil, payload)
}

// DeleteProduct deletes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, token string, id catalog.ID) (*Envelope, error) {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("delete-product/%s", id), nil, nil)
}

// CreateVariant forwards a variant payload. The upstream spells the
// endpoint "varient"; that is its contract, not a typo here.
func (c *Client) CreateVariant(ctx context.Context, token string, payload json.RawMessage) (*Envelope, error) {
	return c.do(ctx, token, http.MethodPost, "create-varient", nil, payload)
}

// UpdateVariant forwards a variant update payload.
func (c *Client) UpdateVariant(ctx context.Context, token string, id catalog.ID, payload json.RawMessage) (*Envelope, error) {
	return c.do(ctx, token, http.MethodPost, fmt.Sprintf("update-varient/%s", id), nil, payload)
}
