package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danielavega/shopfront-backend/api/middleware"
	"github.com/danielavega/shopfront-backend/api/responses"
	"github.com/danielavega/shopfront-backend/api/validators"
	"github.com/danielavega/shopfront-backend/internal/cart"
	"github.com/danielavega/shopfront-backend/internal/catalog"
	pkgerrors "github.com/danielavega/shopfront-backend/pkg/errors"
	"github.com/danielavega/shopfront-backend/pkg/logger"
)

// CartFetch serves the session's cart snapshot.
func CartFetch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		var snap cart.Snapshot
		_ = s.Do(func() error {
			snap = s.Cart.Snapshot()
			return nil
		})
		responses.WriteSuccess(w, snap)
	}
}

type cartAddRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// CartAdd puts one unit of a product into the cart, merging with an existing
// line. Unknown products 404; out-of-stock products are rejected.
func CartAdd(catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := catalogSvc.Get(payload.ProductID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		if !product.InStock {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "product is out of stock"))
			return
		}

		var snap cart.Snapshot
		_ = s.Do(func() error {
			s.Cart.AddItem(product)
			snap = s.Cart.Snapshot()
			return nil
		})
		responses.WriteSuccess(w, snap)
	}
}

type cartUpdateRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// CartUpdate sets a line's quantity. Zero or below removes the line; unknown
// products are a no-op.
func CartUpdate(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		var payload cartUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var snap cart.Snapshot
		_ = s.Do(func() error {
			s.Cart.UpdateQuantity(payload.ProductID, payload.Quantity)
			snap = s.Cart.Snapshot()
			return nil
		})
		responses.WriteSuccess(w, snap)
	}
}

// CartRemove deletes a line regardless of its quantity.
func CartRemove(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		productID := chi.URLParam(r, "productId")
		var snap cart.Snapshot
		_ = s.Do(func() error {
			s.Cart.RemoveItem(productID)
			snap = s.Cart.Snapshot()
			return nil
		})
		responses.WriteSuccess(w, snap)
	}
}

// CartClear empties the cart.
func CartClear(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		var snap cart.Snapshot
		_ = s.Do(func() error {
			s.Cart.Clear()
			snap = s.Cart.Snapshot()
			return nil
		})
		responses.WriteSuccess(w, snap)
	}
}
