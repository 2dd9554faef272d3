package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvpatel/atoz-storefront/api/controllers"
	"github.com/dhruvpatel/atoz-storefront/api/middleware"
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
)

// Deps bundles the stores and services the router wires to handlers.
type Deps struct {
	Catalog       *catalog.Store
	Cart          *cart.Engine
	Gate          *session.Gate
	Views         *views.Router
	Notifications *notifications.Hub
	Orders        *orders.Registry
	Users         *users.Registry
	Banners       *banners.Registry
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	// The storefront surface carries no auth: the demo models a single
	// anonymous shopper whose staff identity lives in the session gate.
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(deps.Gate, logg))
			r.Post("/logout", controllers.AuthLogout(deps.Gate, logg))
		})
		r.Get("/session", controllers.SessionCurrent(deps.Gate, logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.ListCatalog(deps.Catalog, logg))
			r.Get("/{productId}", controllers.GetCatalogProduct(deps.Catalog, logg))
		})
		r.Get("/categories", controllers.ListCategories(deps.Catalog, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.Cart, logg))
			r.Post("/items", controllers.AddCartItem(deps.Cart, logg))
			r.Patch("/items/{productId}", controllers.UpdateCartItemQty(deps.Cart, logg))
			r.Delete("/items/{productId}", controllers.RemoveCartItem(deps.Cart, logg))
		})

		r.Get("/notifications/current", controllers.CurrentToast(deps.Notifications, logg))

		r.Route("/view", func(r chi.Router) {
			r.Get("/", controllers.CurrentView(deps.Views, logg))
			r.Put("/", controllers.ActivateView(deps.Views, deps.Gate, logg))
		})
	})

	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireStaff(logg))
			r.Get("/ping", controllers.PrivatePing())

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.AdminListProducts(deps.Catalog, logg))
				r.Post("/", controllers.AdminCreateProduct(deps.Catalog, logg))
				r.Put("/{productId}", controllers.AdminUpdateProduct(deps.Catalog, logg))
				r.Delete("/{productId}", controllers.AdminDeleteProduct(deps.Catalog, logg))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(logg))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminListOrders(deps.Orders, logg))
				r.Patch("/{orderId}", controllers.AdminUpdateOrderStatus(deps.Orders, logg))
			})
			r.Route("/users", func(r chi.Router) {
				r.Get("/", controllers.AdminListUsers(deps.Users, logg))
				r.Patch("/{userId}", controllers.AdminUpdateUserRole(deps.Users, logg))
			})
			r.Route("/banners", func(r chi.Router) {
				r.Get("/", controllers.AdminListBanners(deps.Banners, logg))
				r.Post("/{bannerId}/toggle", controllers.AdminToggleBanner(deps.Banners, logg))
			})
			r.Route("/categories", func(r chi.Router) {
				r.Get("/", controllers.AdminListCategories(deps.Catalog, logg))
				r.Post("/", controllers.AdminCreateCategory(deps.Catalog, logg))
				r.Delete("/{name}", controllers.AdminDeleteCategory(deps.Catalog, logg))
			})
		})
	})

	return r
}
