// internal/domain/pricing/resolver.go
package pricing

import (
	"github.com/your-org/storefront-admin/internal/domain/catalog"
)

// DefaultTaxRate applies whenever neither the variant nor the product
// carries a usable tax rate.
const DefaultTaxRate = 0.18

// ResolveUnitPrice determines the authoritative unit price of a product
// with no variant selected. Selling-price candidates are checked first and
// must be strictly positive: upstream records use a zero selling price to
// mean "use the list price instead". List/MRP candidates accept zero, so a
// genuinely free item stays free.
func ResolveUnitPrice(p *catalog.Product) float64 {
	if p == nil {
		return 0
	}
	if v, ok := firstPositive(p.SellingPrice, p.AltSellingPrice, p.OldSellingPrice); ok {
		return v
	}
	if v, ok := firstFinite(p.ListPrice, p.LegacyPrice, p.MRP); ok {
		return v
	}
	return 0
}

// ResolveVariantPrice determines the unit price of a selected variant.
// Same precedence rule as ResolveUnitPrice: positive selling price first,
// then any finite list price, then zero.
func ResolveVariantPrice(v *catalog.Variant) float64 {
	if v == nil {
		return 0
	}
	if price, ok := firstPositive(v.SellingPrice); ok {
		return price
	}
	if price, ok := firstFinite(v.LegacyPrice, v.MRP); ok {
		return price
	}
	return 0
}

// ResolveProductTaxRate picks the first usable tax rate among the product's
// alternate tax fields, or DefaultTaxRate when none parses.
func ResolveProductTaxRate(p *catalog.Product) float64 {
	if p == nil {
		return DefaultTaxRate
	}
	if rate, ok := firstNonNegative(p.TaxRate, p.GSTRate, p.CamelTaxRate); ok {
		return rate
	}
	return DefaultTaxRate
}

// ResolveLineTaxRate picks the tax rate for a line with a selected variant:
// variant fields win, then the parent product's fields, then the default.
func ResolveLineTaxRate(p *catalog.Product, v *catalog.Variant) float64 {
	if rate, ok := VariantTaxRate(v); ok {
		return rate
	}
	return ResolveProductTaxRate(p)
}

// VariantTaxRate returns the variant's own tax rate when it carries a
// usable one.
func VariantTaxRate(v *catalog.Variant) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return firstNonNegative(v.TaxRate, v.GSTRate, v.CamelTaxRate)
}

// firstPositive returns the first candidate that parses to a finite
// number > 0.
func firstPositive(candidates ...catalog.Number) (float64, bool) {
	for _, c := range candidates {
		if v, ok := c.Float(); ok && v > 0 {
			return v, true
		}
	}
	return 0, false
}

// firstFinite returns the first candidate that parses at all, zero included.
func firstFinite(candidates ...catalog.Number) (float64, bool) {
	for _, c := range candidates {
		if v, ok := c.Float(); ok {
			return v, true
		}
	}
	return 0, false
}

// firstNonNegative returns the first candidate that parses to a finite
// number >= 0.
func firstNonNegative(candidates ...catalog.Number) (float64, bool) {
	for _, c := range candidates {
		if v, ok := c.Float(); ok && v >= 0 {
			return v, true
		}
	}
	return 0, false
}
