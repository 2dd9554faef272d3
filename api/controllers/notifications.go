package controllers

import (
	"net/http"

	"github.com/dhruvpatel/atoz-storefront/api/responses"
	"github.com/dhruvpatel/atoz-storefront/internal/notifications"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/logger"
)

type toastResponse struct {
	Toast *notifications.Toast `json:"toast"`
}

// CurrentToast returns the live toast, or a null toast when none is
// showing or the last one already expired.
func CurrentToast(hub *notifications.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if hub == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification hub unavailable"))
			return
		}

		toast, ok := hub.Current()
		if !ok {
			responses.WriteSuccess(w, toastResponse{})
			return
		}
		responses.WriteSuccess(w, toastResponse{Toast: &toast})
	}
}
