// Package http provides HTTP handlers for user accounts, notes and
// public note sharing.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/apetrenko/notelink/internal/models"
)

// AuthService defines the interface for account operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user with the given email and password.
	// Returns models.ErrDuplicateEmail if the email is already taken.
	Register(ctx context.Context, email, password string) error
	// Login returns the id of the user matching email and password, or
	// models.ErrInvalidCredentials if none matches.
	Login(ctx context.Context, email, password string) (int64, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying account operations.
	AuthService AuthService
}

// CredentialsRequest represents the JSON payload for registration and login.
type CredentialsRequest struct {
	// Email is the login identifier.
	Email string `json:"email"`
	// Password is the plain credential, compared verbatim.
	Password string `json:"password"`
}

// Register handles POST /register requests.
// It expects a JSON body with non-empty "email" and "password" fields.
// Responds 400 if the email is already registered.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.AuthService.Register(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			http.Error(w, "Email already registered", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "User registered successfully",
	})
}

// Login handles POST /login requests.
// It matches the email and password exactly and returns the user id; the
// caller passes that id on subsequent requests, no session is issued.
// Responds 401 if no user matches.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	userID, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": "Login successful",
		"user_id": userID,
	})
}
