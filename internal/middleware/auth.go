package middleware

import (
	"context"
	"net/http"

	"github.com/feedworks/social_layer/internal/httputil"
	"github.com/feedworks/social_layer/pkg/logger"
)

// SessionCookieName is the cookie carrying the bearer session token.
const SessionCookieName = "sessionId"

// Resolver maps a session token to the bound user id.
type Resolver interface {
	Resolve(ctx context.Context, sessionID string) (string, error)
}

// AuthMiddleware authenticates requests by resolving the sessionId cookie to
// a user id. A missing or unknown token rejects the request.
type AuthMiddleware struct {
	resolver Resolver
	logger   *logger.Logger
}

// NewAuthMiddleware creates a new session authentication middleware.
func NewAuthMiddleware(resolver Resolver, log *logger.Logger) *AuthMiddleware {
	if log == nil {
		log = logger.NewDefault("auth")
	}
	return &AuthMiddleware{resolver: resolver, logger: log}
}

// Handler returns the middleware handler.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			httputil.Unauthorized(w, "sessionId is required")
			return
		}

		userID, err := m.resolver.Resolve(r.Context(), cookie.Value)
		if err != nil {
			m.logger.WithContext(r.Context()).WithError(err).Warn("session resolution failed")
			httputil.Unauthorized(w, "not authorized")
			return
		}

		ctx := logger.WithUserID(r.Context(), userID)
		r = r.WithContext(ctx)
		r.Header.Set(httputil.HeaderUserID, userID)
		next.ServeHTTP(w, r)
	})
}

// GetUserID extracts the authenticated user id from the context.
func GetUserID(ctx context.Context) string {
	return logger.GetUserID(ctx)
}
