// internal/upstream/pos.go
package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/your-org/storefront-admin/internal/domain/catalog"
	"github.com/your-org/storefront-admin/internal/domain/pricing"
)

// POSOrder is a point-of-sale order as served by fetch-pos. Line details
// have appeared under three different keys across upstream versions;
// LineItems normalizes that.
type POSOrder struct {
	POSID       catalog.ID     `json:"id"`
	FullName    string         `json:"fullName"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phoneNumber"`
	Tax         catalog.Number `json:"tax"`
	Price       catalog.Number `json:"price"`
	TotalPrice  catalog.Number `json:"totalPrice"`
	CreatedAt   time.Time      `json:"createdAt"`

	Details        []POSLine `json:"pos_order_details,omitempty"`
	LegacyProducts []POSLine `json:"products,omitempty"`
	OldDetails     []POSLine `json:"order_details,omitempty"`
}

// POSLine is one line of a POS order.
type POSLine struct {
	ProductID   catalog.ID       `json:"product_id,omitempty"`
	VariantID   catalog.ID       `json:"product_variant_id,omitempty"`
	ProductName string           `json:"product_name,omitempty"`
	Quantity    catalog.Number   `json:"quantity,omitempty"`
	Price       catalog.Number   `json:"price,omitempty"`
	Tax         catalog.Number   `json:"tax,omitempty"`
	Variant     *catalog.Variant `json:"product_variant,omitempty"`
}

// LineItems returns the order's lines regardless of which key the upstream
// used for them.
func (o *POSOrder) LineItems() []POSLine {
	if len(o.Details) > 0 {
		return o.Details
	}
	if len(o.LegacyProducts) > 0 {
		return o.LegacyProducts
	}
	return o.OldDetails
}

// Derived computes the display figures for a line from whatever the
// payload carried: subtotal from quantity and unit price, total from
// subtotal plus the line's recorded tax, both rounded to cents.
func (l *POSLine) Derived() (qty int, unit, tax, subtotal, total float64) {
	qty = int(l.Quantity.Or(0))
	unit = l.Price.Or(0)
	tax = l.Tax.Or(0)
	subtotal = pricing.RoundCurrency(float64(qty) * unit)
	total = pricing.RoundCurrency(subtotal + tax)
	return qty, unit, tax, subtotal, total
}

// POSPage is one page of the POS order listing.
type POSPage struct {
	Total  int        `json:"total"`
	Orders []POSOrder `json:"data"`
}

// FetchPOS retrieves one page of POS orders, optionally filtered by a
// free-text search.
func (c *Client) FetchPOS(ctx context.Context, token string, page, limit int, search string) (*POSPage, error) {
	q := pageQuery(page, limit)
	if search != "" {
		q.Set("search", search)
	}
	env, err := c.get(ctx, token, "fetch-pos", q)
	if err != nil {
		return nil, err
	}

	var result POSPage
	if err := decodeData(env, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreatePOSRequest is the payload for creating a POS order: customer
// details plus the cart lines reduced to references and quantities. All
// pricing is recomputed upstream from the same resolution rules.
type CreatePOSRequest struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	PhoneNumber string       `json:"phoneNumber"`
	Address1    string       `json:"address1"`
	Address2    string       `json:"address2,omitempty"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	Country     string       `json:"country"`
	Pincode     int          `json:"pincode"`
	Products    []POSProduct `json:"products"`
}

// POSProduct is one cart line in a CreatePOSRequest.
type POSProduct struct {
	ProductID        catalog.ID `json:"product_id"`
	ProductVariantID catalog.ID `json:"product_variant_id,omitempty"`
	Quantity         int        `json:"quantity"`
}

// CreatePOS submits a POS order.
func (c *Client) CreatePOS(ctx context.Context, token string, req CreatePOSRequest) (*Envelope, error) {
	return c.do(ctx, token, http.MethodPost, "pos", nil, req)
}
