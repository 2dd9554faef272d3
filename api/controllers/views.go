package controllers

import (
	"net/http"

	"github.com/dhruvpatel/atoz-storefront/api/responses"
	"github.com/dhruvpatel/atoz-storefront/api/validators"
	"github.com/dhruvpatel/atoz-storefront/internal/session"
	"github.com/dhruvpatel/atoz-storefront/internal/views"
	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/logger"
)

type activateViewRequest struct {
	View string `json:"view" validate:"required"`
}

type viewResponse struct {
	View enums.View `json:"view"`
}

// CurrentView returns the active storefront panel.
func CurrentView(router *views.Router, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "view router unavailable"))
			return
		}
		responses.WriteSuccess(w, viewResponse{View: router.Current()})
	}
}

// ActivateView switches panels. The admin panel is gated on the current
// session's role, so a guest is refused even with a well-formed request.
func ActivateView(router *views.Router, gate *session.Gate, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router == nil || gate == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "view router unavailable"))
			return
		}

		var body activateViewRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := enums.ParseView(body.View)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid view"))
			return
		}

		active, err := router.Activate(view, gate.Current().Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewResponse{View: active})
	}
}
