package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oshaad/backoffice/internal/token"
)

const secret = "test-secret"

func TestBearerAuth(t *testing.T) {
	valid, err := token.Generate("admin-1", secret, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	expired, err := token.Generate("admin-1", secret, -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer header", "Basic abc", http.StatusUnauthorized},
		{"empty bearer value", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAdminID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAdminID = GetAdminIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/menu", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			BearerAuth(secret)(next).ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectedCode == http.StatusOK && gotAdminID != "admin-1" {
				t.Errorf("admin ID in context = %q; want %q", gotAdminID, "admin-1")
			}
		})
	}
}

func TestGetAdminIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := GetAdminIDFromContext(req.Context()); got != "" {
		t.Errorf("expected empty admin ID, got %q", got)
	}
}
