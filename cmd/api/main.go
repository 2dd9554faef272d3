package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dhruvpatel/atoz-storefront/api/routes"
	"github.com/dhruvpatel/atoz-storefront/internal/banners"
	"github.com/dhruvpatel/atoz-storefront/internal/cart"
	"github.com/dhruvpatel/atoz-storefront/internal/catalog"
	"github.com/dhruvpatel/atoz-storefront/internal/notifications"
	"github.com/dhruvpatel/atoz-storefront/internal/orders"
	"github.com/dhruvpatel/atoz-storefront/internal/session"
	"github.com/dhruvpatel/atoz-storefront/internal/users"
	"github.com/dhruvpatel/atoz-storefront/internal/views"
	"github.com/dhruvpatel/atoz-storefront/pkg/config"
	"github.com/dhruvpatel/atoz-storefront/pkg/logger"
	"github.com/dhruvpatel/atoz-storefront/pkg/seed"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	fixtures, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		logg.Error(context.Background(), "failed to load seed fixtures", err)
		os.Exit(1)
	}

	store, err := catalog.NewStore(fixtures.Products, fixtures.Categories)
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog", err)
		os.Exit(1)
	}

	hub := notifications.NewHub(cfg.Toast.TTL)

	engine, err := cart.NewEngine(store, hub)
	if err != nil {
		logg.Error(context.Background(), "failed to build cart engine", err)
		os.Exit(1)
	}

	viewRouter := views.NewRouter()

	gate, err := session.NewGate(session.GateParams{
		Authenticator: session.NewAllowList(cfg.Demo),
		Toasts:        hub,
		Views:         viewRouter,
		JWTConfig:     cfg.JWT,
		WelcomeTTL:    cfg.Toast.WelcomeTTL,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to build session gate", err)
		os.Exit(1)
	}

	deps := routes.Deps{
		Catalog:       store,
		Cart:          engine,
		Gate:          gate,
		Views:         viewRouter,
		Notifications: hub,
		Orders:        orders.NewRegistry(fixtures.Orders),
		Users:         users.NewRegistry(fixtures.Accounts),
		Banners:       banners.NewRegistry(fixtures.Banners),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, deps),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutting down api server")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
