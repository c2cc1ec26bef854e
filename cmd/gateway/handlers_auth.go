package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/feedworks/social_layer/internal/app/services/identity"
	"github.com/feedworks/social_layer/internal/httputil"
	"github.com/feedworks/social_layer/internal/middleware"
)

// =============================================================================
// Health
// =============================================================================

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"status":    "healthy",
			"service":   "gateway",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// =============================================================================
// Auth Handlers
// =============================================================================

// decodeName reads the `name` field from a JSON body or a form post. The
// registration and login pages submit url-encoded forms; API clients send JSON.
func decodeName(r *http.Request) string {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var payload struct {
			Name string `json:"name"`
		}
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return ""
		}
		return payload.Name
	}

	if err := r.ParseForm(); err != nil {
		return ""
	}
	return r.PostFormValue("name")
}

func registerHandler(svc *identity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.Register(r.Context(), decodeName(r)); err != nil {
			httputil.WriteServiceError(w, err, false)
			return
		}
		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusCreated)
	}
}

func loginHandler(svc *identity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.Login(r.Context(), decodeName(r))
		if err != nil {
			httputil.WriteServiceError(w, err, false)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
		})
		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusCreated)
	}
}

func logoutHandler(svc *identity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var token string
		if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
			token = cookie.Value
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			httputil.WriteServiceError(w, err, false)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
		w.WriteHeader(http.StatusCreated)
	}
}
