// internal/interfaces/http/handlers/invoice.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-admin/internal/config"
	"github.com/your-org/storefront-admin/internal/domain/catalog"
	"github.com/your-org/storefront-admin/internal/pkg/pdf"
	"github.com/your-org/storefront-admin/internal/upstream"
)

// InvoiceHandler handles invoice endpoints
type InvoiceHandler struct {
	upstream   *upstream.Client
	pdfService *pdf.Service
	config     *config.Config
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(upstreamClient *upstream.Client, cfg *config.Config) *InvoiceHandler {
	return &InvoiceHandler{
		upstream:   upstreamClient,
		pdfService: pdf.NewService(cfg),
		config:     cfg,
	}
}

// GenerateInvoice handles GET /orders/:id/invoice
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	orderID := catalog.ID(c.Param("id"))
	if orderID.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	order, err := h.upstream.FetchOrder(c.Request.Context(), token, orderID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	pdfBuffer, err := h.pdfService.GenerateInvoice(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate invoice",
		})
		return
	}

	// Set headers for PDF download
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", order.OrderID))
	c.Header("Content-Length", strconv.Itoa(len(pdfBuffer.Bytes())))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
