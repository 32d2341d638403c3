package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danielavega/shopfront-backend/api/responses"
	"github.com/danielavega/shopfront-backend/api/validators"
	"github.com/danielavega/shopfront-backend/internal/catalog"
	"github.com/danielavega/shopfront-backend/pkg/enums"
	pkgerrors "github.com/danielavega/shopfront-backend/pkg/errors"
	"github.com/danielavega/shopfront-backend/pkg/logger"
)

// CatalogList serves the filtered, sorted product listing. All filter inputs
// arrive as query parameters; omitted ones keep their defaults.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		filter, err := validators.ParseFilterState(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := svc.Browse(r.Context(), filter)
		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"count":    len(products),
		})
	}
}

// CatalogFacets serves the facet vocabularies used to build filter controls.
func CatalogFacets(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		sortOptions := make([]string, 0, len(enums.SortOptions()))
		for _, option := range enums.SortOptions() {
			sortOptions = append(sortOptions, option.String())
		}

		responses.WriteSuccess(w, map[string]any{
			"categories":   svc.Categories(),
			"brands":       svc.Brands(),
			"sort_options": sortOptions,
		})
	}
}

// CatalogDetail serves a single product by ID.
func CatalogDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, ok := svc.Get(chi.URLParam(r, "productId"))
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		responses.WriteSuccess(w, product)
	}
}
