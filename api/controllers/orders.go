package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvpatel/atoz-storefront/api/responses"
	"github.com/dhruvpatel/atoz-storefront/api/validators"
	"github.com/dhruvpatel/atoz-storefront/internal/orders"
	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/logger"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminListOrders returns the seeded demo orders.
func AdminListOrders(registry *orders.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order registry unavailable"))
			return
		}
		responses.WriteSuccess(w, registry.List())
	}
}

// AdminUpdateOrderStatus moves an order to a new fulfillment status.
func AdminUpdateOrderStatus(registry *orders.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order registry unavailable"))
			return
		}

		var body updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID := strings.TrimSpace(chi.URLParam(r, "orderId"))
		order, ok, err := registry.UpdateStatus(orderID, enums.OrderStatus(strings.TrimSpace(body.Status)))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "order not found"))
			return
		}
		responses.WriteSuccess(w, order)
	}
}
