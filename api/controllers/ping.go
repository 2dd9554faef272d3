package controllers

import (
	"net/http"

	"github.com/dhruvpatel/atoz-storefront/api/middleware"
	"github.com/dhruvpatel/atoz-storefront/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func PrivatePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "private", "status": "ok"}
		if name := middleware.UserNameFromContext(r.Context()); name != "" {
			payload["user_name"] = name
		}
		responses.WriteSuccess(w, payload)
	}
}
