package controllers

import (
	"net/http"

	"github.com/dhruvpatel/atoz-storefront/api/responses"
	"github.com/dhruvpatel/atoz-storefront/api/validators"
	"github.com/dhruvpatel/atoz-storefront/internal/session"
	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/logger"
)

type loginRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role" validate:"required"`
}

// AuthLogin resolves the demo allow-list and issues an access token.
func AuthLogin(gate *session.Gate, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if gate == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session gate unavailable"))
			return
		}

		var body loginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		role, err := enums.ParseRole(body.Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role"))
			return
		}

		result, err := gate.Login(r.Context(), session.Credentials{
			Name:          body.Name,
			Email:         body.Email,
			RequestedRole: role,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AuthLogout drops the session back to guest and resets the active view.
func AuthLogout(gate *session.Gate, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if gate == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session gate unavailable"))
			return
		}
		responses.WriteSuccess(w, gate.Logout())
	}
}

// SessionCurrent returns the current session snapshot.
func SessionCurrent(gate *session.Gate, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if gate == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session gate unavailable"))
			return
		}
		responses.WriteSuccess(w, gate.Current())
	}
}
