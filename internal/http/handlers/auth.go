package handlers

import (
	"errors"
	"net/http"

	"fleetflow/internal/apperr"
	"fleetflow/internal/logx"
	"fleetflow/internal/service/auth"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	auth   authUsecase
	logger logx.Logger
}

// NewAuthHandler wires an authUsecase into HTTP handlers.
func NewAuthHandler(logger logx.Logger, uc authUsecase) *AuthHandler {
	return &AuthHandler{auth: uc, logger: logger}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	u, err := h.auth.Register(r.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, userToResponse(u))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "All fields are required.")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusBadRequest, "Email already registered.")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "Registration failed.")
	}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	u, err := h.auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, userToResponse(u))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "Email and password required.")
	case errors.Is(err, apperr.Unauthorized):
		writeError(h.logger, w, r, http.StatusUnauthorized, "Invalid credentials.")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "Login failed.")
	}
}
