// internal/upstream/testimonials.go
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/your-org/storefront-admin/internal/domain/catalog"
)

// FetchTestimonials retrieves all testimonials.
func (c *Client) FetchTestimonials(ctx context.Context, token string) (json.RawMessage, error) {
	env, err := c.get(ctx, token, "fetch-testimonial", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// FetchTestimonial retrieves a single testimonial by id.
func (c *Client) FetchTestimonial(ctx context.Context, token string, id catalog.ID) (json.RawMessage, error) {
	env, err := c.get(ctx, token, fmt.Sprintf("fetchsingle-testimonial/%s", id), nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CreateTestimonial forwards a testimonial payload.
func (c *Client) CreateTestimonial(ctx context.Context, token string, payload json.RawMessage) (*Envelope, error) {
	return c.do(ctx, token, http.MethodPost, "create-testimonial", nil, payload)
}

// UpdateTestimonial forwards a testimonial update payload.
func (c *Client) UpdateTestimonial(ctx context.Context, token string, id catalog.ID, payload json.RawMessage) (*Envelope, error) {
	return c.do(ctx, token, http.MethodPut, fmt.Sprintf("update-testimonial/%s", id), nil, payload)
}

// DeleteTestimonial deletes a testimonial by id.
func (c *Client) DeleteTestimonial(ctx context.Context, token string, id catalog.ID) (*Envelope, error) {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("delete-testimonial/%s", id), nil, nil)
}
