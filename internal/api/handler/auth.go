// internal/api/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"finance-tracker/internal/service"
	"finance-tracker/internal/util"
)

// AuthHandler handles HTTP requests for signup, login, and token refresh.
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		logger:  logger,
	}
}

// CredentialsRequest represents the request body for signup and login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles the user registration request.
// POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondWithMessage(w, h.logger, http.StatusBadRequest, "Email and password are required")
		return
	}

	if err := h.service.Signup(r.Context(), req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, util.ErrUserExists):
			respondWithMessage(w, h.logger, http.StatusBadRequest, "User already exists")
		case errors.Is(err, util.ErrInvalidInput):
			respondWithMessage(w, h.logger, http.StatusBadRequest, "Email and password are required")
		default:
			respondWithInternalError(w, h.logger, "Signup failed", err)
		}
		return
	}

	respondWithMessage(w, h.logger, http.StatusCreated, "User created successfully")
}

// Login handles the login request.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	pair, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			respondWithMessage(w, h.logger, http.StatusNotFound, "User not found")
		case errors.Is(err, util.ErrInvalidCredentials):
			respondWithMessage(w, h.logger, http.StatusBadRequest, "Invalid credentials")
		default:
			respondWithInternalError(w, h.logger, "Login failed", err)
		}
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, pair)
}

// RefreshRequest represents the request body for token refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh handles the token refresh request. The presented refresh token is
// rotated: it becomes permanently invalid once the new pair is issued.
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		respondWithMessage(w, h.logger, http.StatusUnauthorized, "Refresh token required")
		return
	}

	pair, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidRefreshToken):
			respondWithMessage(w, h.logger, http.StatusForbidden, "Invalid refresh token")
		case errors.Is(err, service.ErrInvalidOrExpiredToken):
			respondWithMessage(w, h.logger, http.StatusForbidden, "Invalid or expired refresh token")
		default:
			h.logger.Error("Refresh failed", "error", err)
			respondWithMessage(w, h.logger, http.StatusForbidden, "Invalid or expired refresh token")
		}
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, pair)
}
