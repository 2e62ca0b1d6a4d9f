package upstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPOSOrderLineItems_AlternateKeys(t *testing.T) {
	var order POSOrder
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 5,
		"pos_order_details": [{"product_id": 1}],
		"products": [{"product_id": 2}]
	}`), &order))

	lines := order.LineItems()
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].ProductID.String())

	var fallback POSOrder
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 5,
		"order_details": [{"product_id": 3}]
	}`), &fallback))
	lines = fallback.LineItems()
	require.Len(t, lines, 1)
	assert.Equal(t, "3", lines[0].ProductID.String())
}

func TestPOSLineDerived(t *testing.T) {
	var line POSLine
	require.NoError(t, json.Unmarshal([]byte(`{
		"product_id": 1,
		"quantity": "3",
		"price": "33.333",
		"tax": "10"
	}`), &line))

	qty, unit, tax, subtotal, total := line.Derived()
	assert.Equal(t, 3, qty)
	assert.Equal(t, 33.333, unit)
	assert.Equal(t, 10.0, tax)
	assert.Equal(t, 100.0, subtotal)
	assert.Equal(t, 110.0, total)
}

func TestPOSLineDerived_MissingFields(t *testing.T) {
	var line POSLine
	require.NoError(t, json.Unmarshal([]byte(`{"product_id": 1}`), &line))

	qty, unit, tax, subtotal, total := line.Derived()
	assert.Equal(t, 0, qty)
	assert.Equal(t, 0.0, unit)
	assert.Equal(t, 0.0, tax)
	assert.Equal(t, 0.0, subtotal)
	assert.Equal(t, 0.0, total)
}
