package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newRateLimitedHandler(requestsPerSecond, burst int) http.Handler {
	rl := NewRateLimiter(requestsPerSecond, burst, nil)
	return rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func doFrom(handler http.Handler, addr string) int {
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitKeysOnClientAddress(t *testing.T) {
	handler := newRateLimitedHandler(1, 1)

	if code := doFrom(handler, "10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", code)
	}
	if code := doFrom(handler, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the burst is spent, got %d", code)
	}

	// a different client has its own budget
	if code := doFrom(handler, "10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("expected other client to pass, got %d", code)
	}
}

func TestRateLimitAppliesBeforeAuth(t *testing.T) {
	// the limiter does not need an authenticated identity to key a client
	handler := newRateLimitedHandler(1, 1)

	if code := doFrom(handler, "10.0.0.3:1234"); code != http.StatusOK {
		t.Fatalf("expected unauthenticated request to pass, got %d", code)
	}
	if code := doFrom(handler, "10.0.0.3:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("expected unauthenticated request to be limited, got %d", code)
	}
}
