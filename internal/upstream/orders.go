// internal/upstream/orders.go
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/your-org/storefront-admin/internal/domain/catalog"
)

// Order is a storefront order as served by single-order-fetch and
// fetch-admin-order.
type Order struct {
	OrderID       catalog.ID     `json:"id"`
	UserID        catalog.ID     `json:"user_id,omitempty"`
	Status        string         `json:"order_status,omitempty"`
	PaymentStatus string         `json:"payment_status,omitempty"`
	SubTotal      catalog.Number `json:"sub_total,omitempty"`
	Tax           catalog.Number `json:"tax,omitempty"`
	TotalPrice    catalog.Number `json:"total_price,omitempty"`
	CreatedAt     time.Time      `json:"createdAt,omitempty"`

	// The upstream serializes details with a capital D.
	Details []OrderDetail `json:"order_Details,omitempty"`
}

// OrderDetail is one line of a storefront order.
type OrderDetail struct {
	ProductID catalog.ID       `json:"product_id,omitempty"`
	VariantID catalog.ID       `json:"product_varient_id,omitempty"`
	Quantity  catalog.Number   `json:"quantity,omitempty"`
	Price     catalog.Number   `json:"price,omitempty"`
	Tax       catalog.Number   `json:"tax,omitempty"`
	Total     catalog.Number   `json:"total_price,omitempty"`
	Product   *catalog.Product `json:"product,omitempty"`
}

// OrderPage is one page of the admin order listing.
type OrderPage struct {
	Total  int     `json:"total"`
	Orders []Order `json:"data"`
}

// FetchOrders retrieves one page of admin orders, optionally filtered by
// status.
func (c *Client) FetchOrders(ctx context.Context, token string, page, limit int, status string) (*OrderPage, error) {
	q := pageQuery(page, limit)
	if status != "" {
		q.Set("status", status)
	}
	env, err := c.get(ctx, token, "fetch-admin-order", q)
	if err != nil {
		return nil, err
	}

	var result OrderPage
	if err := decodeData(env, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchOrder retrieves a single order with its line details.
func (c *Client) FetchOrder(ctx context.Context, token string, id catalog.ID) (*Order, error) {
	env, err := c.get(ctx, token, fmt.Sprintf("single-order-fetch/%s", id), nil)
	if err != nil {
		return nil, err
	}

	var order Order
	if err := decodeData(env, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatusRequest is the update-status payload.
type UpdateOrderStatusRequest struct {
	OrderID catalog.ID `json:"order_id"`
	Status  string     `json:"status"`
}

// UpdateOrderStatus moves an order to a new status.
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, req UpdateOrderStatusRequest) (*Envelope, error) {
	return c.do(ctx, token, http.MethodPut, "update-status", nil, req)
}

// DashboardStats is the landing-page summary. The upstream's
// "total_deliverd" spelling is part of its contract.
type DashboardStats struct {
	ProductCount   catalog.Number `json:"product_count"`
	OrderCount     catalog.Number `json:"order_count"`
	TotalDelivered catalog.Number `json:"total_deliverd"`
}

// FetchDashboardStats retrieves the dashboard counters.
func (c *Client) FetchDashboardStats(ctx context.Context, token string) (*DashboardStats, error) {
	env, err := c.get(ctx, token, "dashboard-order", nil)
	if err != nil {
		return nil, err
	}

	var stats DashboardStats
	if err := decodeData(env, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// FetchOrdersCount retrieves the order count summary as-is.
func (c *Client) FetchOrdersCount(ctx context.Context, token string) (json.RawMessage, error) {
	env, err := c.get(ctx, token, "orders-count", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// TransactionPage is one page of payment transactions.
type TransactionPage struct {
	Total        int
	Transactions []json.RawMessage
}

// FetchTransactions retrieves one page of transactions. The record schema
// belongs to the upstream; the gateway passes it through and only reads
// the count.
func (c *Client) FetchTransactions(ctx context.Context, token string, page, limit int) (*TransactionPage, error) {
	env, err := c.get(ctx, token, "transaction", pageQuery(page, limit))
	if err != nil {
		return nil, err
	}

	var records []json.RawMessage
	if err := decodeData(env, &records); err != nil {
		return nil, err
	}

	total := len(records)
	if n, err := env.TransactionCount.Int64(); err == nil && n > 0 {
		total = int(n)
	}

	return &TransactionPage{Total: total, Transactions: records}, nil
}
