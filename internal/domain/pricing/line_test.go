package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLine(t *testing.T) {
	totals := ComputeLine(100, 2, 0.18)

	assert.Equal(t, 200.0, totals.Subtotal)
	assert.Equal(t, 36.0, totals.Tax)
	assert.Equal(t, 236.0, totals.Total)
}

func TestComputeLine_TwoStageRounding(t *testing.T) {
	// The tax is rounded before it is added back, so the total is the sum
	// of two already-rounded amounts.
	totals := ComputeLine(33.333, 3, 0.1)

	assert.InDelta(t, 99.999, totals.Subtotal, 1e-9)
	assert.Equal(t, 10.0, totals.Tax)
	assert.Equal(t, 110.0, totals.Total)
}

func TestComputeLine_ClampsQuantity(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		totals := ComputeLine(50, quantity, 0.18)
		assert.Equal(t, 50.0, totals.Subtotal)
		assert.Equal(t, 9.0, totals.Tax)
		assert.Equal(t, 59.0, totals.Total)
	}
}

func TestComputeLine_ZeroRate(t *testing.T) {
	totals := ComputeLine(75.5, 2, 0)

	assert.Equal(t, 0.0, totals.Tax)
	assert.Equal(t, 151.0, totals.Total)
}

func TestComputeLine_ZeroPrice(t *testing.T) {
	totals := ComputeLine(0, 4, 0.18)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Tax)
	assert.Equal(t, 0.0, totals.Total)
}

func TestRoundCurrency(t *testing.T) {
	// 0.125 is exactly representable, so the half is a true half and must
	// round away from zero in both directions.
	assert.Equal(t, 0.13, RoundCurrency(0.125))
	assert.Equal(t, -0.13, RoundCurrency(-0.125))
	assert.Equal(t, 10.0, RoundCurrency(9.999))
	assert.Equal(t, 1.0, RoundCurrency(1.004))
	assert.Equal(t, 0.0, RoundCurrency(0))
}
