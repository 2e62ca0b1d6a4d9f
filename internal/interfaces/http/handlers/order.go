// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-admin/internal/config"
	"github.com/your-org/storefront-admin/internal/domain/catalog"
	"github.com/your-org/storefront-admin/internal/pkg/pagination"
	"github.com/your-org/storefront-admin/internal/upstream"
)

// OrderHandler handles storefront order endpoints
type OrderHandler struct {
	upstream *upstream.Client
	config   *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(upstreamClient *upstream.Client, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		upstream: upstreamClient,
		config:   cfg,
	}
}

// ListOrders handles GET /fetch-admin-order
func (h *OrderHandler) ListOrders(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", defaultPageSize)
	status := c.Query("status")

	result, err := h.upstream.FetchOrders(c.Request.Context(), token, page, limit, status)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Orders retrieved successfully",
		"data":       result.Orders,
		"pagination": pagination.NewMeta(page, limit, result.Total),
	})
}

// GetOrder handles GET /single-order-fetch/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	order, err := h.upstream.FetchOrder(c.Request.Context(), token, catalog.ID(c.Param("id")))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// UpdateOrderStatus handles PUT /update-status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	var req upstream.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	if req.OrderID.IsEmpty() || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "order_id and status are required",
		})
		return
	}

	env, err := h.upstream.UpdateOrderStatus(c.Request.Context(), token, req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": env.Message,
	})
}

// DashboardStats handles GET /dashboard-order
func (h *OrderHandler) DashboardStats(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	stats, err := h.upstream.FetchDashboardStats(c.Request.Context(), token)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard stats retrieved successfully",
		"data":    stats,
	})
}

// OrdersCount handles GET /orders-count
func (h *OrderHandler) OrdersCount(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	data, err := h.upstream.FetchOrdersCount(c.Request.Context(), token)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order counts retrieved successfully",
		"data":    data,
	})
}

// ListTransactions handles GET /transaction
func (h *OrderHandler) ListTransactions(c *gin.Context) {
	token, ok := requireUpstreamToken(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", defaultPageSize)

	result, err := h.upstream.FetchTransactions(c.Request.Context(), token, page, limit)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Transactions retrieved successfully",
		"data":       result.Transactions,
		"pagination": pagination.NewMeta(page, limit, result.Total),
	})
}
