package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvpatel/atoz-storefront/api/responses"
	"github.com/dhruvpatel/atoz-storefront/api/validators"
	"github.com/dhruvpatel/atoz-storefront/internal/users"
	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/logger"
)

type updateUserRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// AdminListUsers returns the account records shown in the admin panel.
func AdminListUsers(registry *users.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user registry unavailable"))
			return
		}
		responses.WriteSuccess(w, registry.List())
	}
}

// AdminUpdateUserRole reassigns an account's role.
func AdminUpdateUserRole(registry *users.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user registry unavailable"))
			return
		}

		var body updateUserRoleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID := strings.TrimSpace(chi.URLParam(r, "userId"))
		account, ok, err := registry.UpdateRole(userID, enums.Role(strings.TrimSpace(body.Role)))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "user not found"))
			return
		}
		responses.WriteSuccess(w, account)
	}
}
