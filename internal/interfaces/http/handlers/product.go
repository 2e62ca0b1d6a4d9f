// internal/interfaces/http/handlers/product.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-admin/internal/config"
	"github.com/your-org/storefront-admin/internal/domain/catalog"
	"github.com/your-org/storefront-admin/internal/pkg/notify"
	"github.com/your-org/storefront-admin/internal/pkg/pagination"
	"github.com/your-org/storefront-admin/internal/upstream"
)

// defaultPageSize matches the dashboard's product table.
const defaultPageSize = 10

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	upstream *upstream.Client
	config   *config.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(upstreamClient *upstream.Client, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		upstream: upstreamClient,
		config:   cfg,
	}
}

// ListProducts handles GET /admin-product-fetch. The upstream pages the
// catalog itself and reports the catalog-wide count next to each page; the
// page passes through and the count feeds the page window the table renders.
// A failed catalog load degrades to an empty list with an error notice so
// the screen still renders.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", defaultPageSize)

	notices := notify.NewCollector(nil)
	products, total, err := h.upstream.FetchProducts(c.Request.Context(), token, page, limit)
	if err != nil {
		notices.Error("Failed to load products")
		c.JSON(http.StatusOK, gin.H{
			"message":    "Products unavailable",
			"data":       []catalog.Product{},
			"pagination": pagination.NewMeta(1, limit, 0),
			"notices":    notices.Notices(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Products retrieved successfully",
		"data":       products,
		"pagination": pagination.NewMeta(page, limit, total),
	})
}

// GetProduct handles GET /user-product/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	product, err := h.upstream.FetchProduct(c.Request.Context(), token, catalog.ID(c.Param("id")))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// CreateProduct handles POST /create-product
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	forwardJSON(c, func(token string, payload json.RawMessage) (*upstream.Envelope, error) {
		return h.upstream.CreateProduct(c.Request.Context(), token, payload)
	})
}

// UpdateProduct handles PUT /update-product/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := catalog.ID(c.Param("id"))
	forwardJSON(c, func(token string, payload json.RawMessage) (*upstream.Envelope, error) {
		return h.upstream.UpdateProduct(c.Request.Context(), token, id, payload)
	})
}

// DeleteProduct handles DELETE /delete-product/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	env, err := h.upstream.DeleteProduct(c.Request.Context(), token, catalog.ID(c.Param("id")))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": env.Message,
	})
}

// CreateVariant handles POST /create-varient. The path spelling belongs to
// the upstream contract.
func (h *ProductHandler) CreateVariant(c *gin.Context) {
	forwardJSON(c, func(token string, payload json.RawMessage) (*upstream.Envelope, error) {
		return h.upstream.CreateVariant(c.Request.Context(), token, payload)
	})
}

// UpdateVariant handles POST /update-varient/:id
func (h *ProductHandler) UpdateVariant(c *gin.Context) {
	id := catalog.ID(c.Param("id"))
	forwardJSON(c, func(token string, payload json.RawMessage) (*upstream.Envelope, error) {
		return h.upstream.UpdateVariant(c.Request.Context(), token, id, payload)
	})
}

// queryInt reads a positive integer query parameter with a fallback.
func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
