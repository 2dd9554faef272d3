package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvpatel/atoz-storefront/api/responses"
	"github.com/dhruvpatel/atoz-storefront/api/validators"
	"github.com/dhruvpatel/atoz-storefront/internal/catalog"
	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/logger"
)

type productDraftRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	Stock    int      `json:"stock"`
	Images   []string `json:"images"`
	Discount float64  `json:"discount"`
	Status   string   `json:"status"`
	Label    string   `json:"label"`
}

// toDraft carries the status raw when it does not parse so the catalog's
// validator can report it with the admin-form message.
func (r productDraftRequest) toDraft() catalog.Draft {
	status, err := enums.ParseProductStatus(strings.TrimSpace(r.Status))
	if err != nil {
		status = enums.ProductStatus(r.Status)
	}
	return catalog.Draft{
		Name:     r.Name,
		Category: r.Category,
		Price:    r.Price,
		Stock:    r.Stock,
		Images:   r.Images,
		Discount: r.Discount,
		Status:   status,
		Label:    r.Label,
	}
}

// AdminListProducts returns the full catalog for the admin table.
func AdminListProducts(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, store.List())
	}
}

// AdminCreateProduct validates the draft and prepends the new product.
func AdminCreateProduct(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var body productDraftRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := store.Create(body.toDraft())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct replaces an existing product's fields in place.
func AdminUpdateProduct(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var body productDraftRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID := strings.TrimSpace(chi.URLParam(r, "productId"))
		product, ok, err := store.Update(productID, body.toDraft())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a product. Deleting a missing id succeeds.
func AdminDeleteProduct(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		store.Delete(strings.TrimSpace(chi.URLParam(r, "productId")))
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
