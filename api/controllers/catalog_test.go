package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhruvpatel/atoz-storefront/pkg/models"
)

func decodeData(t *testing.T, body []byte, dest any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
}

func TestListCatalogUnfiltered(t *testing.T) {
	fx := newTestFixture(t)
	handler := ListCatalog(fx.store, testLogger())

	resp := httptest.NewRecorder()
	handler(resp, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var products []models.Product
	decodeData(t, resp.Body.Bytes(), &products)
	if len(products) != 6 {
		t.Fatalf("expected 6 seed products got %d", len(products))
	}
}

func TestListCatalogFiltered(t *testing.T) {
	fx := newTestFixture(t)
	handler := ListCatalog(fx.store, testLogger())

	resp := httptest.NewRecorder()
	handler(resp, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?query=COTTON&category=Men%27s%20Fashion", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var products []models.Product
	decodeData(t, resp.Body.Bytes(), &products)
	for _, p := range products {
		if p.Category != "Men's Fashion" {
			t.Fatalf("filter leaked category %q", p.Category)
		}
	}
	if len(products) == 0 {
		t.Fatal("expected case-insensitive substring match")
	}
}

func TestGetCatalogProductMissing(t *testing.T) {
	fx := newTestFixture(t)
	handler := GetCatalogProduct(fx.store, testLogger())

	req := addRouteParam(httptest.NewRequest(http.MethodGet, "/api/v1/catalog/nope", nil), "productId", "nope")
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestListCategoriesIncludesAll(t *testing.T) {
	fx := newTestFixture(t)
	handler := ListCategories(fx.store, testLogger())

	resp := httptest.NewRecorder()
	handler(resp, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))

	var categories []string
	decodeData(t, resp.Body.Bytes(), &categories)
	if len(categories) == 0 || categories[0] != "All" {
		t.Fatalf("expected All first, got %v", categories)
	}
}
