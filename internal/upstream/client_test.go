package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-admin/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return NewClient(config.UpstreamConfig{BaseURL: srv.URL}, logger)
}

func TestFetchProduct_DecodesEnvelope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user-product/66a1", r.URL.Path)
		assert.Equal(t, "tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {
				"_id": "66a1",
				"product_name": "Atta",
				"productselling_price": "250"
			}
		}`))
	})

	product, err := client.FetchProduct(context.Background(), "tok-123", "66a1")
	require.NoError(t, err)
	assert.Equal(t, "Atta", product.Name)
	assert.Equal(t, 250.0, product.SellingPrice.Or(0))
}

func TestFetchProducts_PageQuery(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin-product-fetch", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Write([]byte(`{"success": true, "count": 35, "data": [{"product_name": "A"}, {"product_name": "B"}]}`))
	})

	products, total, err := client.FetchProducts(context.Background(), "tok", 2, 10)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "B", products[1].Name)
	assert.Equal(t, 35, total)
}

func TestFetchProducts_MissingCountFallsBackToPageLength(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": [{"product_name": "A"}, {"product_name": "B"}]}`))
	})

	products, total, err := client.FetchProducts(context.Background(), "tok", 1, 10)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 2, total)
}

func TestDo_SuccessFalseBecomesAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "Product already exists"}`))
	})

	_, err := client.CreateProduct(context.Background(), "tok", json.RawMessage(`{}`))
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	assert.Equal(t, "Product already exists", apiErr.Message)
}

func TestDo_HTTPErrorWithoutEnvelope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	})

	_, err := client.FetchTaxes(context.Background(), "tok")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusGatewayTimeout, apiErr.StatusCode)
}

func TestLogin_ReturnsToken(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin-login", r.URL.Path)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin", req.Username)

		w.Write([]byte(`{"success": true, "token": "upstream-jwt"}`))
	})

	token, _, err := client.Login(context.Background(), LoginRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "upstream-jwt", token)
}

func TestFetchOrder_UpstreamKeySpellings(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"data": {
				"id": 12,
				"order_status": "pending",
				"total_price": "590",
				"order_Details": [
					{"product_id": 4, "product_varient_id": 9, "quantity": "2", "price": "250"}
				]
			}
		}`))
	})

	order, err := client.FetchOrder(context.Background(), "tok", "12")
	require.NoError(t, err)
	assert.Equal(t, "pending", order.Status)
	require.Len(t, order.Details, 1)
	assert.Equal(t, 2.0, order.Details[0].Quantity.Or(0))
	assert.Equal(t, "9", order.Details[0].VariantID.String())
}

func TestFetchTransactions_CountFallback(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "transaction_count": 42, "data": [{}, {}]}`))
	})

	page, err := client.FetchTransactions(context.Background(), "tok", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 42, page.Total)
	assert.Len(t, page.Transactions, 2)
}
