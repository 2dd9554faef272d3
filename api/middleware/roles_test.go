package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
)

func roleRequest(role enums.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(WithRole(req.Context(), string(role)))
}

func TestRequireStaff(t *testing.T) {
	handler := RequireStaff(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		role enums.Role
		want int
	}{
		{enums.RoleAdmin, http.StatusOK},
		{enums.RoleManager, http.StatusOK},
		{enums.RoleCustomer, http.StatusForbidden},
		{enums.RoleGuest, http.StatusForbidden},
	}
	for _, tc := range cases {
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, roleRequest(tc.role))
		if resp.Code != tc.want {
			t.Fatalf("role %s: expected %d got %d", tc.role, tc.want, resp.Code)
		}
	}
}

func TestRequireStaffRejectsMissingRole(t *testing.T) {
	handler := RequireStaff(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		role enums.Role
		want int
	}{
		{enums.RoleAdmin, http.StatusOK},
		{enums.RoleManager, http.StatusForbidden},
		{enums.RoleCustomer, http.StatusForbidden},
	}
	for _, tc := range cases {
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, roleRequest(tc.role))
		if resp.Code != tc.want {
			t.Fatalf("role %s: expected %d got %d", tc.role, tc.want, resp.Code)
		}
	}
}
