package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dhruvpatel/atoz-storefront/api/responses"
	"github.com/dhruvpatel/atoz-storefront/internal/banners"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/logger"
)

// AdminListBanners returns the promotional banner records.
func AdminListBanners(registry *banners.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "banner registry unavailable"))
			return
		}
		responses.WriteSuccess(w, registry.List())
	}
}

// AdminToggleBanner flips a banner's active flag.
func AdminToggleBanner(registry *banners.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "banner registry unavailable"))
			return
		}

		bannerID := strings.TrimSpace(chi.URLParam(r, "bannerId"))
		banner, ok := registry.Toggle(bannerID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "banner not found"))
			return
		}
		responses.WriteSuccess(w, banner)
	}
}
