// internal/interfaces/http/handlers/testimonial.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-admin/internal/config"
	"github.com/your-org/storefront-admin/internal/domain/catalog"
	"github.com/your-org/storefront-admin/internal/upstream"
)

// TestimonialHandler handles testimonial endpoints
type TestimonialHandler struct {
	upstream *upstream.Client
	config   *config.Config
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(upstreamClient *upstream.Client, cfg *config.Config) *TestimonialHandler {
	return &TestimonialHandler{
		upstream: upstreamClient,
		config:   cfg,
	}
}

// ListTestimonials handles GET /fetch-testimonial
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	data, err := h.upstream.FetchTestimonials(c.Request.Context(), token)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Testimonials retrieved successfully",
		"data":    data,
	})
}

// GetTestimonial handles GET /fetchsingle-testimonial/:id
func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	data, err := h.upstream.FetchTestimonial(c.Request.Context(), token, catalog.ID(c.Param("id")))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Testimonial retrieved successfully",
		"data":    data,
	})
}

// CreateTestimonial handles POST /create-testimonial
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	forwardJSON(c, func(token string, payload json.RawMessage) (*upstream.Envelope, error) {
		return h.upstream.CreateTestimonial(c.Request.Context(), token, payload)
	})
}

// UpdateTestimonial handles PUT /update-testimonial/:id
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id := catalog.ID(c.Param("id"))
	forwardJSON(c, func(token string, payload json.RawMessage) (*upstream.Envelope, error) {
		return h.upstream.UpdateTestimonial(c.Request.Context(), token, id, payload)
	})
}

// DeleteTestimonial handles DELETE /delete-testimonial/:id
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	env, err := h.upstream.DeleteTestimonial(c.Request.Context(), token, catalog.ID(c.Param("id")))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": env.Message,
	})
}
