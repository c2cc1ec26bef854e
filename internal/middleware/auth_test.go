package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/feedworks/social_layer/internal/errors"
	"github.com/feedworks/social_layer/internal/httputil"
)

type fakeResolver struct {
	sessions map[string]string
}

func (f *fakeResolver) Resolve(_ context.Context, sessionID string) (string, error) {
	if userID, ok := f.sessions[sessionID]; ok {
		return userID, nil
	}
	return "", errors.Unauthorized("not authorized")
}

func newAuthTestHandler(t *testing.T) (http.Handler, *string, *string) {
	t.Helper()
	var seenHeader, seenCtx string
	auth := NewAuthMiddleware(&fakeResolver{sessions: map[string]string{"tok-1": "u1"}}, nil)
	handler := auth.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenHeader = r.Header.Get(httputil.HeaderUserID)
		seenCtx = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &seenHeader, &seenCtx
}

func TestAuthMissingCookie(t *testing.T) {
	handler, _, _ := newAuthTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthUnknownToken(t *testing.T) {
	handler, _, _ := newAuthTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bogus"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthValidTokenInjectsUserID(t *testing.T) {
	handler, seenHeader, seenCtx := newAuthTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if *seenHeader != "u1" {
		t.Fatalf("expected user id u1 in the relay header, got %q", *seenHeader)
	}
	if *seenCtx != "u1" {
		t.Fatalf("expected user id u1 in the context, got %q", *seenCtx)
	}
}
