package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dhruvpatel/atoz-storefront/internal/banners"
	"github.com/dhruvpatel/atoz-storefront/internal/orders"
	"github.com/dhruvpatel/atoz-storefront/internal/users"
	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	"github.com/dhruvpatel/atoz-storefront/pkg/models"
	"github.com/dhruvpatel/atoz-storefront/pkg/seed"
)

func TestAdminUpdateOrderStatus(t *testing.T) {
	registry := orders.NewRegistry(seed.Defaults().Orders)
	handler := AdminUpdateOrderStatus(registry, testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/O-10001", strings.NewReader(`{"status":"Shipped"}`))
	req = addRouteParam(req, "orderId", "O-10001")
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var order models.Order
	decodeData(t, resp.Body.Bytes(), &order)
	if order.Status != enums.OrderStatusShipped {
		t.Fatalf("unexpected status %s", order.Status)
	}
}

func TestAdminUpdateOrderStatusInvalid(t *testing.T) {
	registry := orders.NewRegistry(seed.Defaults().Orders)
	handler := AdminUpdateOrderStatus(registry, testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/O-10001", strings.NewReader(`{"status":"teleported"}`))
	req = addRouteParam(req, "orderId", "O-10001")
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminUpdateOrderStatusMissing(t *testing.T) {
	registry := orders.NewRegistry(seed.Defaults().Orders)
	handler := AdminUpdateOrderStatus(registry, testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/O-404", strings.NewReader(`{"status":"Shipped"}`))
	req = addRouteParam(req, "orderId", "O-404")
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestAdminUpdateUserRole(t *testing.T) {
	registry := users.NewRegistry(seed.Defaults().Accounts)
	handler := AdminUpdateUserRole(registry, testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/users/U-2", strings.NewReader(`{"role":"customer"}`))
	req = addRouteParam(req, "userId", "U-2")
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var account models.Account
	decodeData(t, resp.Body.Bytes(), &account)
	if account.Role != enums.RoleCustomer {
		t.Fatalf("unexpected role %s", account.Role)
	}
}

func TestAdminUpdateUserRoleRejectsGuest(t *testing.T) {
	registry := users.NewRegistry(seed.Defaults().Accounts)
	handler := AdminUpdateUserRole(registry, testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/users/U-1", strings.NewReader(`{"role":"guest"}`))
	req = addRouteParam(req, "userId", "U-1")
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminToggleBanner(t *testing.T) {
	registry := banners.NewRegistry(seed.Defaults().Banners)
	handler := AdminToggleBanner(registry, testLogger())

	before := registry.List()[0]
	req := addRouteParam(httptest.NewRequest(http.MethodPost, "/api/v1/admin/banners/"+before.ID+"/toggle", nil), "bannerId", before.ID)
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var banner models.Banner
	decodeData(t, resp.Body.Bytes(), &banner)
	if banner.Active == before.Active {
		t.Fatal("expected active flag flipped")
	}
}

func TestAdminToggleBannerMissing(t *testing.T) {
	registry := banners.NewRegistry(seed.Defaults().Banners)
	handler := AdminToggleBanner(registry, testLogger())

	req := addRouteParam(httptest.NewRequest(http.MethodPost, "/api/v1/admin/banners/B-404/toggle", nil), "bannerId", "B-404")
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
