package controllers

import (
	"net/http"

	"github.com/danielavega/shopfront-backend/api/middleware"
	"github.com/danielavega/shopfront-backend/api/responses"
	"github.com/danielavega/shopfront-backend/api/validators"
	pkgerrors "github.com/danielavega/shopfront-backend/pkg/errors"
	"github.com/danielavega/shopfront-backend/pkg/logger"
)

// Auth request bodies deliberately carry no validate tags: emptiness and shape
// checks live in the identity service so their error copy stays intact.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthLogin resolves the mock credential rules after the simulated delay.
func AuthLogin(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := s.Identity.Login(r.Context(), payload.Email, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithUserID(ctx, result.User.ID)
			logg.Info(ctx, "auth.login")
		}
		responses.WriteSuccess(w, result)
	}
}

// AuthRegister mints a new mock account for any well-formed input.
func AuthRegister(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		var payload registerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := s.Identity.Register(r.Context(), payload.Email, payload.Password, payload.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// AuthLogout drops the session's user. Always succeeds.
func AuthLogout(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		s.Identity.Logout()
		responses.WriteSuccess(w, s.Identity.State())
	}
}

// AuthClearError drops the surfaced auth error, mirroring a form-field edit.
func AuthClearError(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		s.Identity.ClearError()
		responses.WriteSuccess(w, s.Identity.State())
	}
}

// AuthSession serves the current identity snapshot.
func AuthSession(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middleware.SessionFromContext(r.Context())
		if s == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		responses.WriteSuccess(w, s.Identity.State())
	}
}
