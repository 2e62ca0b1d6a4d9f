package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/your-org/storefront-admin/internal/config"
	"github.com/your-org/storefront-admin/internal/upstream"
)

func productTestHandler(t *testing.T, upstreamHandler http.HandlerFunc) *ProductHandler {
	t.Helper()
	srv := httptest.NewServer(upstreamHandler)
	t.Cleanup(srv.Close)

	client := upstream.NewClient(config.UpstreamConfig{BaseURL: srv.URL}, testLogger())
	return NewProductHandler(client, &config.Config{})
}

func TestListProducts_ForwardsServerPage(t *testing.T) {
	handler := productTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("Expected page=2 forwarded upstream, got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("Expected limit=10 forwarded upstream, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "message": "ok", "count": 35, "data": [
			{"id": 11, "name": "Tea"},
			{"id": 12, "name": "Coffee"}
		]}`))
	})

	w := httptest.NewRecorder()
	c := authedContext(t, w, http.MethodGet, "/admin-product-fetch?page=2&limit=10", nil)
	handler.ListProducts(c)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Page       int   `json:"page"`
			TotalPages int   `json:"total_pages"`
			Total      int   `json:"total"`
			Window     []int `json:"page_window"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("Expected the upstream page to pass through, got %d entries", len(resp.Data))
	}
	if resp.Pagination.Page != 2 || resp.Pagination.TotalPages != 4 || resp.Pagination.Total != 35 {
		t.Fatalf("Unexpected pagination meta: %+v", resp.Pagination)
	}
	if len(resp.Pagination.Window) != 4 {
		t.Fatalf("Expected a 4-page window, got %v", resp.Pagination.Window)
	}
}

func TestListProducts_UpstreamDownReturnsEmptyListWithNotice(t *testing.T) {
	handler := productTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	w := httptest.NewRecorder()
	c := authedContext(t, w, http.MethodGet, "/admin-product-fetch", nil)
	handler.ListProducts(c)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on catalog failure, got %d", w.Code)
	}

	var resp struct {
		Data    []json.RawMessage `json:"data"`
		Notices []struct {
			Level   string `json:"level"`
			Message string `json:"message"`
		} `json:"notices"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Fatalf("Expected empty product list, got %d entries", len(resp.Data))
	}
	if len(resp.Notices) != 1 || resp.Notices[0].Level != "error" {
		t.Fatalf("Expected one error notice, got %+v", resp.Notices)
	}
}
