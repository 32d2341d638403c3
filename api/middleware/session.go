package middleware

import (
	"context"
	"net/http"

	"github.com/danielavega/shopfront-backend/api/responses"
	"github.com/danielavega/shopfront-backend/internal/session"
	"github.com/danielavega/shopfront-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

type contextKey string

const ctxSession contextKey = "session"

// SessionFromContext returns the session attached by the Session middleware,
// or nil outside of it.
func SessionFromContext(ctx context.Context) *session.Session {
	if ctx == nil {
		return nil
	}
	if s, ok := ctx.Value(ctxSession).(*session.Session); ok {
		return s
	}
	return nil
}

// WithSession injects a session into the context. Exposed for handler tests.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSession, s)
}

// Session resolves the client's session from the X-Session-Id header, minting
// one when the header is absent or unknown, and echoes the ID back so the
// client can persist it.
func Session(registry *session.Registry, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := registry.GetOrCreate(r.Header.Get(sessionIDHeader))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			w.Header().Set(sessionIDHeader, s.ID)

			ctx := WithSession(r.Context(), s)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, s.ID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
