package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-admin/internal/domain/catalog"
)

func TestResolveUnitPrice_SellingPricePrecedence(t *testing.T) {
	p := &catalog.Product{
		SellingPrice:    catalog.NewNumber(120),
		AltSellingPrice: catalog.NewNumber(110),
		OldSellingPrice: catalog.NewNumber(100),
		ListPrice:       catalog.NewNumber(150),
	}

	assert.Equal(t, 120.0, ResolveUnitPrice(p))
}

func TestResolveUnitPrice_SkipsZeroSellingPrice(t *testing.T) {
	// A zero selling price means "use the list price", not "free".
	p := &catalog.Product{
		SellingPrice: catalog.NewNumber(0),
		ListPrice:    catalog.NewNumber(150),
	}

	assert.Equal(t, 150.0, ResolveUnitPrice(p))
}

func TestResolveUnitPrice_FallsThroughSellingCandidates(t *testing.T) {
	p := &catalog.Product{
		SellingPrice:    catalog.NewNumber(0),
		AltSellingPrice: catalog.NewNumber(95),
	}

	assert.Equal(t, 95.0, ResolveUnitPrice(p))
}

func TestResolveUnitPrice_ZeroListPriceIsFree(t *testing.T) {
	// List-price candidates accept zero so a genuinely free item stays free.
	p := &catalog.Product{
		ListPrice: catalog.NewNumber(0),
		MRP:       catalog.NewNumber(200),
	}

	assert.Equal(t, 0.0, ResolveUnitPrice(p))
}

func TestResolveUnitPrice_StringPrices(t *testing.T) {
	var p catalog.Product
	require.NoError(t, json.Unmarshal([]byte(`{
		"product_name": "Basmati Rice",
		"productselling_price": "89.50",
		"product_price": "120"
	}`), &p))

	assert.Equal(t, 89.50, ResolveUnitPrice(&p))
}

func TestResolveUnitPrice_NothingUsable(t *testing.T) {
	var p catalog.Product
	require.NoError(t, json.Unmarshal([]byte(`{
		"product_name": "Mystery Item",
		"productselling_price": "not-a-number",
		"product_price": null
	}`), &p))

	assert.Equal(t, 0.0, ResolveUnitPrice(&p))
	assert.Equal(t, 0.0, ResolveUnitPrice(nil))
}

func TestResolveVariantPrice(t *testing.T) {
	v := &catalog.Variant{
		SellingPrice: catalog.NewNumber(45),
		MRP:          catalog.NewNumber(60),
	}
	assert.Equal(t, 45.0, ResolveVariantPrice(v))

	// Zero selling price falls through to the legacy price.
	v = &catalog.Variant{
		SellingPrice: catalog.NewNumber(0),
		LegacyPrice:  catalog.NewNumber(52),
	}
	assert.Equal(t, 52.0, ResolveVariantPrice(v))

	assert.Equal(t, 0.0, ResolveVariantPrice(nil))
	assert.Equal(t, 0.0, ResolveVariantPrice(&catalog.Variant{}))
}

func TestResolveProductTaxRate_Default(t *testing.T) {
	assert.Equal(t, DefaultTaxRate, ResolveProductTaxRate(&catalog.Product{}))
	assert.Equal(t, DefaultTaxRate, ResolveProductTaxRate(nil))
}

func TestResolveProductTaxRate_ZeroIsExempt(t *testing.T) {
	// An explicit zero rate is a tax-exempt product, not a missing value.
	p := &catalog.Product{
		TaxRate: catalog.NewNumber(0),
		GSTRate: catalog.NewNumber(0.12),
	}

	assert.Equal(t, 0.0, ResolveProductTaxRate(p))
}

func TestResolveProductTaxRate_AlternateKeys(t *testing.T) {
	var p catalog.Product
	require.NoError(t, json.Unmarshal([]byte(`{
		"product_name": "Ghee",
		"gst_rate": "0.05"
	}`), &p))

	assert.Equal(t, 0.05, ResolveProductTaxRate(&p))
}

func TestResolveLineTaxRate_VariantWins(t *testing.T) {
	p := &catalog.Product{TaxRate: catalog.NewNumber(0.18)}
	v := &catalog.Variant{GSTRate: catalog.NewNumber(0.05)}

	assert.Equal(t, 0.05, ResolveLineTaxRate(p, v))
}

func TestResolveLineTaxRate_FallsBackToProduct(t *testing.T) {
	p := &catalog.Product{TaxRate: catalog.NewNumber(0.12)}
	v := &catalog.Variant{}

	assert.Equal(t, 0.12, ResolveLineTaxRate(p, v))
	assert.Equal(t, DefaultTaxRate, ResolveLineTaxRate(&catalog.Product{}, nil))
}

func TestVariantTaxRate_NegativeRatesIgnored(t *testing.T) {
	v := &catalog.Variant{
		TaxRate: catalog.NewNumber(-1),
		GSTRate: catalog.NewNumber(0.18),
	}

	rate, ok := VariantTaxRate(v)
	require.True(t, ok)
	assert.Equal(t, 0.18, rate)
}
