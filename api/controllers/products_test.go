package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dhruvpatel/atoz-storefront/pkg/models"
)

const validDraftJSON = `{"name":"Linen Shirt","category":"Men's Fashion","price":49.5,"stock":12,"images":["https://img.test/shirt.png"],"discount":10,"status":"Active","label":"New"}`

func TestAdminCreateProduct(t *testing.T) {
	fx := newTestFixture(t)
	handler := AdminCreateProduct(fx.store, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", strings.NewReader(validDraftJSON))
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var product models.Product
	decodeData(t, resp.Body.Bytes(), &product)
	if product.ID == "" || product.Name != "Linen Shirt" {
		t.Fatalf("unexpected product %+v", product)
	}

	listing := fx.store.List()
	if listing[0].ID != product.ID {
		t.Fatal("new product should be listed first")
	}
}

func TestAdminCreateProductValidation(t *testing.T) {
	fx := newTestFixture(t)
	handler := AdminCreateProduct(fx.store, testLogger())

	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"short name", `{"name":"ab","category":"Kids","price":10,"stock":1,"images":["http://x"],"status":"Active"}`, "Product name must be at least 3 characters"},
		{"unknown category", `{"name":"Shirt","category":"Nope","price":10,"stock":1,"images":["http://x"],"status":"Active"}`, "Category is invalid"},
		{"bad price", `{"name":"Shirt","category":"Kids","price":0,"stock":1,"images":["http://x"],"status":"Active"}`, "Price must be a positive number"},
		{"negative stock", `{"name":"Shirt","category":"Kids","price":10,"stock":-1,"images":["http://x"],"status":"Active"}`, "Stock must be a non-negative integer"},
		{"no images", `{"name":"Shirt","category":"Kids","price":10,"stock":1,"images":[],"status":"Active"}`, "At least one image URL is required"},
		{"bad image", `{"name":"Shirt","category":"Kids","price":10,"stock":1,"images":["ftp://x"],"status":"Active"}`, "Images must be valid URLs"},
		{"discount range", `{"name":"Shirt","category":"Kids","price":10,"stock":1,"images":["http://x"],"discount":95,"status":"Active"}`, "Discount must be between 0 and 90"},
		{"unknown status", `{"name":"Shirt","category":"Kids","price":10,"stock":1,"images":["http://x"],"status":"archived"}`, "Status must be Active or Draft"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", strings.NewReader(tc.body))
		resp := httptest.NewRecorder()
		handler(resp, req)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", tc.name, resp.Code)
		}
		if !strings.Contains(resp.Body.String(), tc.message) {
			t.Fatalf("%s: expected message %q in %s", tc.name, tc.message, resp.Body.String())
		}
	}
}

func TestAdminUpdateProductMissing(t *testing.T) {
	fx := newTestFixture(t)
	handler := AdminUpdateProduct(fx.store, testLogger())

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/products/P9999", strings.NewReader(validDraftJSON))
	req = addRouteParam(req, "productId", "P9999")
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestAdminDeleteProductIdempotent(t *testing.T) {
	fx := newTestFixture(t)
	handler := AdminDeleteProduct(fx.store, testLogger())

	for i := 0; i < 2; i++ {
		req := addRouteParam(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/P1001", nil), "productId", "P1001")
		resp := httptest.NewRecorder()
		handler(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("pass %d: unexpected status %d", i, resp.Code)
		}
	}
	if _, ok := fx.store.Get("P1001"); ok {
		t.Fatal("product should be gone")
	}
}
