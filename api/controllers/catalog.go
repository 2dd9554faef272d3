package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvpatel/atoz-storefront/api/responses"
	"github.com/dhruvpatel/atoz-storefront/internal/catalog"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/logger"
)

// ListCatalog returns the storefront's products, narrowed by the optional
// query and category filters.
func ListCatalog(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		query := r.URL.Query().Get("query")
		category := r.URL.Query().Get("category")
		responses.WriteSuccess(w, store.Filter(query, category))
	}
}

// GetCatalogProduct returns a single product by id.
func GetCatalogProduct(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		productID := strings.TrimSpace(chi.URLParam(r, "productId"))
		product, ok := store.Get(productID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ListCategories returns the category filter options, "All" first.
func ListCategories(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, store.CategoriesWithAll())
	}
}
