package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cafeops/eventbrew/pkg/auth"
)

func okHandler(called *bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthRejectsMissingAndMalformedHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc"},
		{"no token", "Bearer"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(okHandler(&called))(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			if called {
				t.Error("handler ran despite failed auth")
			}
		})
	}
}

func TestAuthPassesValidToken(t *testing.T) {
	token, err := auth.GenerateToken(7, "barista", "staff")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotRole string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Auth(func(w http.ResponseWriter, r *http.Request) {
		gotRole, _ = r.Context().Value(RoleKey).(string)
		w.WriteHeader(http.StatusOK)
	})(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotRole != "staff" {
		t.Errorf("role in context = %q, want staff", gotRole)
	}
}

func TestOrganizerRequiresRole(t *testing.T) {
	staffToken, _ := auth.GenerateToken(7, "barista", "staff")
	organizerToken, _ := auth.GenerateToken(1, "lead", "organizer")

	called := false
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	rec := httptest.NewRecorder()
	Organizer(okHandler(&called))(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("staff status = %d, want 403", rec.Code)
	}
	if called {
		t.Error("handler ran for non-organizer")
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+organizerToken)
	rec = httptest.NewRecorder()
	Organizer(okHandler(&called))(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("organizer status = %d, want 200", rec.Code)
	}
	if !called {
		t.Error("handler did not run for organizer")
	}
}
