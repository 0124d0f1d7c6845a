package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"taskboard/internal/core"

	"go.uber.org/zap"
)

const identityKey contextKey = "identity"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Authorizer . Authorizer
type Authorizer interface {
	Authorize(header string) (core.Identity, error)
}

type AuthMiddleware struct {
	logs       *zap.SugaredLogger
	authorizer Authorizer
}

func NewAuthMiddleware(logger *zap.SugaredLogger, authorizer Authorizer) *AuthMiddleware {
	return &AuthMiddleware{
		logs:       logger,
		authorizer: authorizer,
	}
}

// Authorize lets the request through only with a valid bearer token in the
// Authorization header.
func (m *AuthMiddleware) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFromContext(r.Context())

		identity, err := m.authorizer.Authorize(r.Header.Get("Authorization"))
		if err != nil {
			m.logs.Errorw("request not authorized",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestID)
			m.deny(w, unauthorizedMessage(err), requestID)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthorizeFunc wraps a handler function for mux registration.
func (m *AuthMiddleware) AuthorizeFunc(next http.HandlerFunc) http.Handler {
	return m.Authorize(next)
}

func IdentityFromContext(ctx context.Context) (core.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(core.Identity)
	return identity, ok
}

func unauthorizedMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrMissingToken):
		return "No token provided"
	case errors.Is(err, core.ErrMalformedHeader):
		return "Invalid authorization format"
	default:
		return "Invalid or expired token"
	}
}

func (m *AuthMiddleware) deny(w http.ResponseWriter, message, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		m.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestID)
	}
}
