package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvpatel/atoz-storefront/api/responses"
	"github.com/dhruvpatel/atoz-storefront/api/validators"
	"github.com/dhruvpatel/atoz-storefront/internal/catalog"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/logger"
)

type addCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// AdminListCategories returns the raw category set, without the "All"
// pseudo-entry the storefront filter adds.
func AdminListCategories(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, store.Categories())
	}
}

// AdminCreateCategory appends a category. Duplicates are rejected.
func AdminCreateCategory(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var body addCategoryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.AddCategory(body.Name); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, store.Categories())
	}
}

// AdminDeleteCategory removes a category and reassigns its products to
// the fallback category. Removing an unknown name succeeds.
func AdminDeleteCategory(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		store.RemoveCategory(strings.TrimSpace(chi.URLParam(r, "name")))
		responses.WriteSuccess(w, store.Categories())
	}
}
