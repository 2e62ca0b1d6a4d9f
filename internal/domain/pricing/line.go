// internal/domain/pricing/line.go
package pricing

import "math"

// LineTotals is the monetary breakdown of a single cart line.
type LineTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeLine derives tax and total for one line. Quantity is clamped to a
// minimum of 1. Tax is rounded to cents first and the total is rounded again
// after adding the already-rounded tax; the two-stage rounding can differ by
// a cent from rounding a tax-inclusive total once, and downstream accounting
// reconciles against exactly this sequence, so it must not be collapsed.
func ComputeLine(unitPrice float64, quantity int, taxRate float64) LineTotals {
	if quantity < 1 {
		quantity = 1
	}
	subtotal := unitPrice * float64(quantity)
	tax := RoundCurrency(subtotal * taxRate)
	total := RoundCurrency(subtotal + tax)
	return LineTotals{Subtotal: subtotal, Tax: tax, Total: total}
}

// RoundCurrency rounds to two decimals, halves away from zero.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
