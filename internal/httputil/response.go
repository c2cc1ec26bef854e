// Package httputil provides shared request and response helpers for the
// gateway handlers.
package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/feedworks/social_layer/internal/errors"
)

// HeaderUserID carries the authenticated user id, set by the auth middleware.
const HeaderUserID = "X-User-ID"

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeJSON decodes the request body into dst. On failure it writes a 400
// response and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		BadRequest(w, "invalid request body")
		return false
	}
	return true
}

// JSONError writes a `{error: message}` body with the given status.
func JSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// BadRequest writes a 400 error response.
func BadRequest(w http.ResponseWriter, message string) {
	JSONError(w, message, http.StatusBadRequest)
}

// NotFound writes a 404 error response.
func NotFound(w http.ResponseWriter, message string) {
	JSONError(w, message, http.StatusNotFound)
}

// Unauthorized writes a 401 error response.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "not authorized"
	}
	JSONError(w, message, http.StatusUnauthorized)
}

// InternalError writes a 500 error response.
func InternalError(w http.ResponseWriter, message string) {
	JSONError(w, message, http.StatusInternalServerError)
}

// WriteServiceError maps err onto its HTTP status. Unknown errors become 500.
// When emptyNotFound is set, a not-found error responds 404 with no body.
func WriteServiceError(w http.ResponseWriter, err error, emptyNotFound bool) {
	svcErr := errors.GetServiceError(err)
	if svcErr == nil {
		InternalError(w, "internal error")
		return
	}
	if emptyNotFound && svcErr.Code == errors.CodeNotFound {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	JSONError(w, svcErr.Message, svcErr.HTTPStatus)
}

// RequireUserID returns the authenticated user id injected by the auth
// middleware, or writes a 401 response and returns false.
func RequireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get(HeaderUserID)
	if userID == "" {
		Unauthorized(w, "")
		return "", false
	}
	return userID, true
}
