package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvpatel/atoz-storefront/api/responses"
	"github.com/dhruvpatel/atoz-storefront/api/validators"
	"github.com/dhruvpatel/atoz-storefront/internal/cart"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/logger"
)

type cartResponse struct {
	Items    []cart.Line `json:"items"`
	Subtotal float64     `json:"subtotal"`
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type updateCartQtyRequest struct {
	Qty int `json:"qty"`
}

func cartSnapshot(engine *cart.Engine, items []cart.Line) cartResponse {
	if items == nil {
		items = engine.Items()
	}
	return cartResponse{Items: items, Subtotal: engine.Subtotal()}
}

// GetCart returns the cart lines and the discount-aware subtotal.
func GetCart(engine *cart.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if engine == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}
		responses.WriteSuccess(w, cartSnapshot(engine, nil))
	}
}

// AddCartItem puts one unit of the product in the cart.
func AddCartItem(engine *cart.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if engine == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		var body addCartItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := engine.Add(strings.TrimSpace(body.ProductID))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartSnapshot(engine, items))
	}
}

// UpdateCartItemQty sets a line's quantity, clamped to [1, stock]. The
// stock bound is the line's own snapshot; absent lines are no-ops.
func UpdateCartItemQty(engine *cart.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if engine == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		var body updateCartQtyRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID := strings.TrimSpace(chi.URLParam(r, "productId"))
		stock := 0
		for _, line := range engine.Items() {
			if line.ID == productID {
				stock = line.Stock
				break
			}
		}

		items := engine.UpdateQty(productID, body.Qty, stock)
		responses.WriteSuccess(w, cartSnapshot(engine, items))
	}
}

// RemoveCartItem deletes a line. Missing ids are no-ops.
func RemoveCartItem(engine *cart.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if engine == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		productID := strings.TrimSpace(chi.URLParam(r, "productId"))
		items := engine.Remove(productID)
		responses.WriteSuccess(w, cartSnapshot(engine, items))
	}
}
