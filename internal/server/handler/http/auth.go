// Package http provides the HTTP handlers for admin authentication and
// menu catalog management.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oshaad/backoffice/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Login verifies credentials and returns a signed bearer token.
	// Returns service.ErrInvalidCredentials when the pair is wrong.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles HTTP requests for admin login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// LoginRequest represents the JSON payload for admin login.
type LoginRequest struct {
	// Email is the admin's login email.
	Email string `json:"email"`
	// Password is the admin's password.
	Password string `json:"password"`
}

// Login handles POST /api/auth/login requests.
// It expects a JSON body with non-empty "email" and "password" fields and
// responds with {"token": ...} on success or {"message": ...} on failure.
// Wrong credentials get 401 with a deliberately generic message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	signed, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": signed})
}
