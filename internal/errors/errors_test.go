package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestTaxonomyStatusMapping(t *testing.T) {
	cases := []struct {
		err    *ServiceError
		code   Code
		status int
	}{
		{Validation("name is required"), CodeValidation, http.StatusBadRequest},
		{Conflict("user already exists"), CodeConflict, http.StatusBadRequest},
		{NotFound("post not found"), CodeNotFound, http.StatusNotFound},
		{Unauthorized("not authorized"), CodeUnauthorized, http.StatusUnauthorized},
		{Internal("persist failed", fmt.Errorf("disk full")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if tc.err.Code != tc.code {
			t.Fatalf("expected code %s, got %s", tc.code, tc.err.Code)
		}
		if tc.err.HTTPStatus != tc.status {
			t.Fatalf("%s: expected status %d, got %d", tc.code, tc.status, tc.err.HTTPStatus)
		}
	}
}

func TestGetServiceErrorThroughWrap(t *testing.T) {
	base := NotFound("session not found")
	wrapped := fmt.Errorf("logout: %w", base)

	svcErr := GetServiceError(wrapped)
	if svcErr == nil {
		t.Fatalf("expected service error through wrap")
	}
	if svcErr.Code != CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %s", svcErr.Code)
	}

	if GetServiceError(fmt.Errorf("plain")) != nil {
		t.Fatalf("plain error should not yield a service error")
	}
}

func TestIsCode(t *testing.T) {
	err := Conflict("post already liked")
	if !IsCode(err, CodeConflict) {
		t.Fatalf("expected conflict code")
	}
	if IsCode(err, CodeNotFound) {
		t.Fatalf("conflict should not match not-found")
	}
}

func TestInternalKeepsCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Internal("persist failed", cause)
	if err.Unwrap() != cause {
		t.Fatalf("expected cause to be preserved")
	}
}
