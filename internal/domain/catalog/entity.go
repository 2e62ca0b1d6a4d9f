// internal/domain/catalog/entity.go
package catalog

import "fmt"

// Product represents a catalog record as returned by the upstream commerce
// API. The upstream schema grew organically, so the same concept is exposed
// under several alternate keys; each alternative gets its own field and the
// resolvers in the pricing package walk them in precedence order. No
// reflection tricks, just ordered accessors.
type Product struct {
	MongoID   ID     `json:"_id,omitempty"`
	NumericID ID     `json:"id,omitempty"`
	Name      string `json:"product_name"`

	// Selling-price candidates, highest precedence first.
	SellingPrice    Number `json:"productselling_price,omitempty"`
	AltSellingPrice Number `json:"selling_price,omitempty"`
	OldSellingPrice Number `json:"product_selling_price,omitempty"`

	// List/MRP price candidates, used when no positive selling price exists.
	ListPrice   Number `json:"product_price,omitempty"`
	LegacyPrice Number `json:"Price,omitempty"`
	MRP         Number `json:"mrp,omitempty"`

	// Tax-rate candidates, as fractions (0.18 == 18%).
	TaxRate      Number `json:"tax_rate,omitempty"`
	GSTRate      Number `json:"gst_rate,omitempty"`
	CamelTaxRate Number `json:"taxRate,omitempty"`

	Variants    []Variant `json:"product_varients,omitempty"`
	AltVariants []Variant `json:"product_variants,omitempty"`

	Images []Image `json:"product_images,omitempty"`
}

// Variant represents a SKU-level option of a product (a size or quantity
// pack). Its price and tax fields, when present, override the parent's.
type Variant struct {
	VariantID ID `json:"id"`

	// Display-label candidates. "quntity" is the upstream's own spelling;
	// it is the primary key in live data and must be matched as-is.
	PackLabel    string `json:"quntity,omitempty"`
	AltPackLabel string `json:"quantity,omitempty"`
	LegacyName   string `json:"varient_name,omitempty"`
	AltName      string `json:"variant_name,omitempty"`

	SellingPrice Number `json:"selling_price,omitempty"`
	LegacyPrice  Number `json:"Price,omitempty"`
	MRP          Number `json:"mrp,omitempty"`

	TaxRate      Number `json:"tax_rate,omitempty"`
	GSTRate      Number `json:"gst_rate,omitempty"`
	CamelTaxRate Number `json:"taxRate,omitempty"`

	Stock int `json:"stock,omitempty"`
}

// Image represents a product image record.
type Image struct {
	ImageID ID     `json:"id,omitempty"`
	FileURL string `json:"file_url,omitempty"`
	AltText string `json:"alt_text,omitempty"`
}

// ID returns the authoritative identifier: the Mongo-style id wins, the
// numeric id is the fallback.
func (p *Product) ID() ID {
	if !p.MongoID.IsEmpty() {
		return p.MongoID
	}
	return p.NumericID
}

// VariantList returns the variants regardless of which key the upstream
// used for them.
func (p *Product) VariantList() []Variant {
	if len(p.Variants) > 0 {
		return p.Variants
	}
	return p.AltVariants
}

// HasVariants reports whether the product requires a variant selection
// before it can be priced.
func (p *Product) HasVariants() bool {
	return len(p.VariantList()) > 0
}

// FindVariant looks a variant up by id within this product. Returns nil
// when the id matches nothing.
func (p *Product) FindVariant(id ID) *Variant {
	variants := p.VariantList()
	for i := range variants {
		if variants[i].VariantID == id {
			return &variants[i]
		}
	}
	return nil
}

// Label returns a human-readable descriptor for the variant, first match
// among the alternate name keys, falling back to "#<id>".
func (v *Variant) Label() string {
	for _, candidate := range []string{v.PackLabel, v.AltPackLabel, v.LegacyName, v.AltName} {
		if candidate != "" {
			return candidate
		}
	}
	return fmt.Sprintf("#%s", v.VariantID)
}
