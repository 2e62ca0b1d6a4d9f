package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		valid bool
	}{
		{"number", `12.5`, 12.5, true},
		{"integer", `7`, 7, true},
		{"quoted number", `"89.50"`, 89.50, true},
		{"quoted integer", `"120"`, 120, true},
		{"zero", `0`, 0, true},
		{"quoted zero", `"0"`, 0, true},
		{"negative", `-3`, -3, true},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"garbage", `"abc"`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))

			v, ok := n.Float()
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, v)
			}
		})
	}
}

func TestNumberOr(t *testing.T) {
	assert.Equal(t, 5.0, NewNumber(5).Or(9))
	assert.Equal(t, 9.0, Number{}.Or(9))
	// Zero is a value, not an absence.
	assert.Equal(t, 0.0, NewNumber(0).Or(9))
}

func TestNumberMarshal(t *testing.T) {
	out, err := json.Marshal(NewNumber(12.5))
	require.NoError(t, err)
	assert.Equal(t, `12.5`, string(out))

	out, err = json.Marshal(Number{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestIDUnmarshal(t *testing.T) {
	var id ID
	require.NoError(t, json.Unmarshal([]byte(`"66a1b2c3"`), &id))
	assert.Equal(t, ID("66a1b2c3"), id)

	require.NoError(t, json.Unmarshal([]byte(`42`), &id))
	assert.Equal(t, ID("42"), id)

	require.NoError(t, json.Unmarshal([]byte(`null`), &id))
	assert.True(t, id.IsEmpty())
}

func TestProductID(t *testing.T) {
	p := Product{MongoID: "abc", NumericID: "7"}
	assert.Equal(t, ID("abc"), p.ID())

	p = Product{NumericID: "7"}
	assert.Equal(t, ID("7"), p.ID())
}

func TestVariantList(t *testing.T) {
	p := Product{
		Variants:    []Variant{{VariantID: "a"}},
		AltVariants: []Variant{{VariantID: "b"}},
	}
	require.Len(t, p.VariantList(), 1)
	assert.Equal(t, ID("a"), p.VariantList()[0].VariantID)

	p = Product{AltVariants: []Variant{{VariantID: "b"}}}
	require.Len(t, p.VariantList(), 1)
	assert.Equal(t, ID("b"), p.VariantList()[0].VariantID)

	assert.False(t, (&Product{}).HasVariants())
}

func TestVariantLabel(t *testing.T) {
	v := Variant{VariantID: "9", PackLabel: "500g", AltName: "Half Kilo"}
	assert.Equal(t, "500g", v.Label())

	v = Variant{VariantID: "9", AltName: "Half Kilo"}
	assert.Equal(t, "Half Kilo", v.Label())

	v = Variant{VariantID: "9"}
	assert.Equal(t, "#9", v.Label())
}

func TestProductDecode_HeterogeneousPayload(t *testing.T) {
	payload := `{
		"_id": "66a1",
		"product_name": "Atta",
		"productselling_price": "250",
		"tax_rate": "0.05",
		"product_varients": [
			{"id": 3, "quntity": "5kg", "selling_price": "240", "stock": 12}
		]
	}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(payload), &p))

	assert.Equal(t, ID("66a1"), p.ID())
	assert.True(t, p.HasVariants())

	v := p.FindVariant("3")
	require.NotNil(t, v)
	assert.Equal(t, "5kg", v.Label())
	assert.Equal(t, 240.0, v.SellingPrice.Or(0))
	assert.Nil(t, p.FindVariant("99"))
}
