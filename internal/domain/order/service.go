// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/your-org/storefront-admin/internal/domain/cart"
	"github.com/your-org/storefront-admin/internal/pkg/notify"
	"github.com/your-org/storefront-admin/internal/upstream"
)

// Customer carries the walk-in customer details captured at the counter.
// Address2 is the only optional field.
type Customer struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Pincode     string `json:"pincode"`
}

// Service submits counter sales to the upstream commerce API.
type Service struct {
	upstream *upstream.Client
	carts    cart.Store
}

// NewService creates a new order service
func NewService(upstreamClient *upstream.Client, cartService cart.Store) *Service {
	return &Service{
		upstream: upstreamClient,
		carts:    cartService,
	}
}

// Validate checks the customer form the way the counter screen does.
// It returns one message per missing field, in form order.
func (c *Customer) Validate() []string {
	var problems []string

	required := []struct {
		label string
		value string
	}{
		{"Name", c.Name},
		{"Email", c.Email},
		{"Phone number", c.PhoneNumber},
		{"Address line 1", c.Address1},
		{"City", c.City},
		{"State", c.State},
		{"Country", c.Country},
		{"Pincode", c.Pincode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			problems = append(problems, fmt.Sprintf("%s is required", f.label))
		}
	}

	if strings.TrimSpace(c.Pincode) != "" {
		if _, err := strconv.Atoi(strings.TrimSpace(c.Pincode)); err != nil {
			problems = append(problems, "Pincode must be numeric")
		}
	}

	return problems
}

// SubmitPOS places a counter sale built from the session cart. The cart is
// cleared only after the upstream accepts the order, so a failed submit
// leaves the counter screen intact.
func (s *Service) SubmitPOS(ctx context.Context, token, sessionID string, customer Customer, notifier notify.Notifier) error {
	crt, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	if crt.IsEmpty() {
		notifier.Warn("Please add at least one product")
		return fmt.Errorf("cart is empty")
	}

	if problems := customer.Validate(); len(problems) > 0 {
		for _, p := range problems {
			notifier.Warn(p)
		}
		return fmt.Errorf("invalid customer details")
	}

	pincode, _ := strconv.Atoi(strings.TrimSpace(customer.Pincode))

	req := upstream.CreatePOSRequest{
		Name:        strings.TrimSpace(customer.Name),
		Email:       strings.TrimSpace(customer.Email),
		PhoneNumber: strings.TrimSpace(customer.PhoneNumber),
		Address1:    strings.TrimSpace(customer.Address1),
		Address2:    strings.TrimSpace(customer.Address2),
		City:        strings.TrimSpace(customer.City),
		State:       strings.TrimSpace(customer.State),
		Country:     strings.TrimSpace(customer.Country),
		Pincode:     pincode,
	}

	for _, line := range crt.Lines {
		product := upstream.POSProduct{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		if !line.SelectedVariant.IsEmpty() {
			product.ProductVariantID = line.SelectedVariant
		}
		req.Products = append(req.Products, product)
	}

	if _, err := s.upstream.CreatePOS(ctx, token, req); err != nil {
		notifier.Error("Failed to place order")
		return fmt.Errorf("failed to place POS order: %w", err)
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// The order went through; a stale cart is recoverable.
		notifier.Info("Order placed, cart could not be cleared")
		return nil
	}

	notifier.Success("Order placed successfully")
	return nil
}
