// internal/interfaces/http/handlers/pos.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-admin/internal/config"
	"github.com/your-org/storefront-admin/internal/domain/cart"
	"github.com/your-org/storefront-admin/internal/domain/catalog"
	"github.com/your-org/storefront-admin/internal/domain/order"
	"github.com/your-org/storefront-admin/internal/pkg/notify"
	"github.com/your-org/storefront-admin/internal/pkg/pagination"
	"github.com/your-org/storefront-admin/internal/upstream"
)

// POSHandler handles the point-of-sale flow: the session cart the counter
// screen builds up, and the submitted counter sales.
type POSHandler struct {
	upstream     *upstream.Client
	cartStore    cart.Store
	orderService *order.Service
	config       *config.Config
	log          logrus.FieldLogger
}

// NewPOSHandler creates a new POS handler
func NewPOSHandler(upstreamClient *upstream.Client, cartStore cart.Store, cfg *config.Config, log logrus.FieldLogger) *POSHandler {
	return &POSHandler{
		upstream:     upstreamClient,
		cartStore:    cartStore,
		orderService: order.NewService(upstreamClient, cartStore),
		config:       cfg,
		log:          log,
	}
}

// GetCart handles GET /cart
func (h *POSHandler) GetCart(c *gin.Context) {
	sessionID := sessionIDFromContext(c)

	crt, err := h.cartStore.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartResponse(crt),
	})
}

// AddToCartRequest is the add-to-cart payload.
type AddToCartRequest struct {
	ProductID catalog.ID `json:"product_id" binding:"required"`
}

// AddToCart handles POST /cart/items. The product is fetched fresh from the
// upstream so the line snapshots current prices, not whatever the client
// last saw.
func (h *POSHandler) AddToCart(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}
	sessionID := sessionIDFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.upstream.FetchProduct(c.Request.Context(), token, req.ProductID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	crt, err := h.cartStore.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	notices := notify.NewCollector(h.log)
	if crt.AddProduct(product, notices) {
		if err := h.cartStore.Save(c.Request.Context(), crt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to save cart",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    cartResponse(crt),
		"notices": notices.Notices(),
	})
}

// SelectVariantRequest is the variant-selection payload.
type SelectVariantRequest struct {
	VariantID catalog.ID `json:"variant_id" binding:"required"`
}

// SelectVariant handles PUT /cart/items/:id/variant
func (h *POSHandler) SelectVariant(c *gin.Context) {
	var req SelectVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.mutateCart(c, func(crt *cart.Cart) {
		crt.SelectVariant(catalog.ID(c.Param("id")), req.VariantID)
	})
}

// SetQuantityRequest is the quantity payload. The counter screen's quantity
// box submits strings, so the field takes either form.
type SetQuantityRequest struct {
	Quantity catalog.Number `json:"quantity"`
}

// SetQuantity handles PUT /cart/items/:id/quantity
func (h *POSHandler) SetQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.mutateCart(c, func(crt *cart.Cart) {
		quantity := int(req.Quantity.Or(1))
		crt.SetQuantity(catalog.ID(c.Param("id")), quantity)
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *POSHandler) RemoveFromCart(c *gin.Context) {
	h.mutateCart(c, func(crt *cart.Cart) {
		crt.RemoveProduct(catalog.ID(c.Param("id")))
	})
}

// ClearCart handles DELETE /cart
func (h *POSHandler) ClearCart(c *gin.Context) {
	sessionID := sessionIDFromContext(c)

	if err := h.cartStore.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// SubmitPOS handles POST /pos
func (h *POSHandler) SubmitPOS(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}
	sessionID := sessionIDFromContext(c)

	var customer order.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	notices := notify.NewCollector(h.log)
	if err := h.orderService.SubmitPOS(c.Request.Context(), token, sessionID, customer, notices); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   err.Error(),
			"notices": notices.Notices(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"notices": notices.Notices(),
	})
}

// ListPOS handles GET /fetch-pos
func (h *POSHandler) ListPOS(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", defaultPageSize)
	search := c.Query("search")

	result, err := h.upstream.FetchPOS(c.Request.Context(), token, page, limit, search)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "POS orders retrieved successfully",
		"data":       result.Orders,
		"pagination": pagination.NewMeta(page, limit, result.Total),
	})
}

// mutateCart loads the session cart, applies one mutation and saves it.
func (h *POSHandler) mutateCart(c *gin.Context, mutate func(crt *cart.Cart)) {
	sessionID := sessionIDFromContext(c)

	crt, err := h.cartStore.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	mutate(crt)

	if err := h.cartStore.Save(c.Request.Context(), crt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    cartResponse(crt),
	})
}

// cartResponse shapes the cart for the counter screen, with the running
// grand total alongside the lines.
func cartResponse(crt *cart.Cart) gin.H {
	return gin.H{
		"lines":       crt.Lines,
		"grand_total": crt.GrandTotal(),
		"updated_at":  crt.UpdatedAt,
	}
}
