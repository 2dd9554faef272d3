package controllers

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvpatel/atoz-storefront/internal/cart"
	"github.com/dhruvpatel/atoz-storefront/internal/catalog"
	"github.com/dhruvpatel/atoz-storefront/internal/notifications"
	"github.com/dhruvpatel/atoz-storefront/internal/session"
	"github.com/dhruvpatel/atoz-storefront/internal/views"
	"github.com/dhruvpatel/atoz-storefront/pkg/config"
	"github.com/dhruvpatel/atoz-storefront/pkg/logger"
	"github.com/dhruvpatel/atoz-storefront/pkg/seed"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func addRouteParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

type testFixture struct {
	store  *catalog.Store
	engine *cart.Engine
	hub    *notifications.Hub
	router *views.Router
	gate   *session.Gate
}

func newTestFixture(t *testing.T) testFixture {
	t.Helper()

	fixtures := seed.Defaults()
	store, err := catalog.NewStore(fixtures.Products, fixtures.Categories)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	hub := notifications.NewHub(2 * time.Second)
	engine, err := cart.NewEngine(store, hub)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	router := views.NewRouter()
	gate, err := session.NewGate(session.GateParams{
		Authenticator: session.NewAllowList(config.DemoConfig{AdminName: "dhruv", ManagerName: "partner"}),
		Toasts:        hub,
		Views:         router,
		JWTConfig:     config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60},
		WelcomeTTL:    1600 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}
	return testFixture{store: store, engine: engine, hub: hub, router: router, gate: gate}
}
