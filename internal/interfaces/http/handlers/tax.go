// internal/interfaces/http/handlers/tax.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-admin/internal/config"
	"github.com/your-org/storefront-admin/internal/domain/catalog"
	"github.com/your-org/storefront-admin/internal/upstream"
)

// TaxHandler handles tax configuration endpoints. Tax records live
// upstream; the gateway relays them for the settings screens.
type TaxHandler struct {
	upstream *upstream.Client
	config   *config.Config
}

// NewTaxHandler creates a new tax handler
func NewTaxHandler(upstreamClient *upstream.Client, cfg *config.Config) *TaxHandler {
	return &TaxHandler{
		upstream: upstreamClient,
		config:   cfg,
	}
}

// ListTaxes handles GET /tax
func (h *TaxHandler) ListTaxes(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	data, err := h.upstream.FetchTaxes(c.Request.Context(), token)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Taxes retrieved successfully",
		"data":    data,
	})
}

// GetCountryTax handles GET /tax/country/:id
func (h *TaxHandler) GetCountryTax(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	data, err := h.upstream.FetchCountryTax(c.Request.Context(), token, catalog.ID(c.Param("id")))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Country tax retrieved successfully",
		"data":    data,
	})
}

// GetStateTax handles GET /tax/state/:id
func (h *TaxHandler) GetStateTax(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	data, err := h.upstream.FetchStateTax(c.Request.Context(), token, catalog.ID(c.Param("id")))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "State tax retrieved successfully",
		"data":    data,
	})
}

// CreateCountryTax handles POST /tax/country
func (h *TaxHandler) CreateCountryTax(c *gin.Context) {
	forwardJSON(c, func(token string, payload json.RawMessage) (*upstream.Envelope, error) {
		return h.upstream.CreateCountryTax(c.Request.Context(), token, payload)
	})
}

// CreateStateTax handles POST /tax/state
func (h *TaxHandler) CreateStateTax(c *gin.Context) {
	forwardJSON(c, func(token string, payload json.RawMessage) (*upstream.Envelope, error) {
		return h.upstream.CreateStateTax(c.Request.Context(), token, payload)
	})
}

// DeleteTax handles DELETE /tax/:id
func (h *TaxHandler) DeleteTax(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	env, err := h.upstream.DeleteTax(c.Request.Context(), token, catalog.ID(c.Param("id")))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": env.Message,
	})
}
