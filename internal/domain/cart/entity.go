// internal/domain/cart/entity.go
package cart

import (
	"math"
	"time"

	"github.com/your-org/storefront-admin/internal/domain/catalog"
	"github.com/your-org/storefront-admin/internal/domain/pricing"
	"github.com/your-org/storefront-admin/internal/pkg/notify"
)

// LineState tracks where a line is in its pricing lifecycle.
type LineState string

const (
	// LineStatePriced means unit price, tax and total are resolved.
	LineStatePriced LineState = "priced"
	// LineStateAwaitingVariant means the product has variants and none is
	// selected yet; the line is held at zero until one is.
	LineStateAwaitingVariant LineState = "awaiting_variant"
	// LineStateMismatchedVariant means a variant id was selected that
	// matches nothing; the selection is recorded and the line is priced
	// at zero.
	LineStateMismatchedVariant LineState = "mismatched_variant"
)

// Line is one product entry in a cart. A product appears at most once.
type Line struct {
	ProductID   catalog.ID        `json:"product_id"`
	ProductName string            `json:"product_name"`
	Variants    []catalog.Variant `json:"product_variants,omitempty"`

	SelectedVariant catalog.ID `json:"selected_variant,omitempty"`
	Quantity        int        `json:"quantity"`

	UnitPrice float64 `json:"unit_price"`
	TaxRate   float64 `json:"tax_rate"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total_price"`

	State LineState `json:"state"`

	// ProductTaxRate is the rate resolved from the parent product at add
	// time; variants without their own tax fields fall back to it.
	ProductTaxRate float64 `json:"product_tax_rate"`

	AddedAt time.Time `json:"added_at"`
}

// Cart is an ordered collection of lines for one order-creation session.
// All mutations are synchronous; the session service serializes access so
// two mutations of the same cart never overlap.
type Cart struct {
	SessionID string    `json:"session_id,omitempty"`
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates an empty cart for a session.
func New(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		SessionID: sessionID,
		Lines:     []Line{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddProduct appends a new line for the product with quantity 1. A nil
// product or one without an id is ignored. Re-adding a product already in
// the cart is rejected with an informational notice and leaves the existing
// line untouched. Products without variants are priced immediately;
// products with variants stay at zero until a variant is selected.
func (c *Cart) AddProduct(p *catalog.Product, notifier notify.Notifier) bool {
	if p == nil || p.ID().IsEmpty() {
		return false
	}
	if c.find(p.ID()) != nil {
		if notifier != nil {
			notifier.Info("Product already added")
		}
		return false
	}

	productRate := pricing.ResolveProductTaxRate(p)
	line := Line{
		ProductID:      p.ID(),
		ProductName:    p.Name,
		Variants:       p.VariantList(),
		Quantity:       1,
		TaxRate:        productRate,
		ProductTaxRate: productRate,
		AddedAt:        time.Now().UTC(),
	}

	if p.HasVariants() {
		line.State = LineStateAwaitingVariant
	} else {
		line.State = LineStatePriced
		line.UnitPrice = pricing.ResolveUnitPrice(p)
		totals := pricing.ComputeLine(line.UnitPrice, line.Quantity, line.TaxRate)
		line.Tax = totals.Tax
		line.Total = totals.Total
	}

	c.Lines = append(c.Lines, line)
	c.touch()
	return true
}

// SelectVariant records a variant choice for a line and reprices it with
// the line's current quantity. Unknown product ids are a no-op. An unknown
// variant id resolves to a zero price but the selection sticks, so the user
// can see and correct it.
func (c *Cart) SelectVariant(productID, variantID catalog.ID) {
	line := c.find(productID)
	if line == nil {
		return
	}

	var variant *catalog.Variant
	for i := range line.Variants {
		if line.Variants[i].VariantID == variantID {
			variant = &line.Variants[i]
			break
		}
	}

	line.SelectedVariant = variantID
	line.UnitPrice = pricing.ResolveVariantPrice(variant)
	line.TaxRate = variantTaxRate(variant, line.ProductTaxRate)
	totals := pricing.ComputeLine(line.UnitPrice, line.Quantity, line.TaxRate)
	line.Tax = totals.Tax
	line.Total = totals.Total

	if variant != nil {
		line.State = LineStatePriced
	} else {
		line.State = LineStateMismatchedVariant
	}
	c.touch()
}

// SetQuantity updates a line's quantity, clamped to a minimum of 1, and
// recomputes tax and total from the line's existing unit price and tax
// rate. Unknown product ids are a no-op.
func (c *Cart) SetQuantity(productID catalog.ID, quantity int) {
	line := c.find(productID)
	if line == nil {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	line.Quantity = quantity
	totals := pricing.ComputeLine(line.UnitPrice, line.Quantity, line.TaxRate)
	line.Tax = totals.Tax
	line.Total = totals.Total
	c.touch()
}

// RemoveProduct deletes a line. Unknown product ids are a no-op.
func (c *Cart) RemoveProduct(productID catalog.ID) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.touch()
			return
		}
	}
}

// GrandTotal sums all line totals. A corrupted total counts as zero rather
// than poisoning the sum.
func (c *Cart) GrandTotal() float64 {
	var sum float64
	for _, line := range c.Lines {
		if math.IsNaN(line.Total) || math.IsInf(line.Total, 0) {
			continue
		}
		sum += line.Total
	}
	return sum
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear drops all lines.
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.touch()
}

func (c *Cart) find(productID catalog.ID) *Line {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}

// variantTaxRate prefers the variant's own tax fields; a variant without
// any falls back to the rate resolved from the parent product at add time.
func variantTaxRate(v *catalog.Variant, productRate float64) float64 {
	if rate, ok := pricing.VariantTaxRate(v); ok {
		return rate
	}
	return productRate
}
