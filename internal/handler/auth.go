package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/roomiesplit/roomiesplit/internal/auth"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Full name, email, and password are required.")
		return
	}

	_, err := h.authenticator.Register(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			WriteError(w, http.StatusBadRequest, "Full name, email, and password are required.")
		case errors.Is(err, auth.ErrEmailExists):
			WriteError(w, http.StatusBadRequest, "User with that email already exists.")
		default:
			h.logger.Error("registration failed", "email", req.Email, "error", err)
			WriteError(w, http.StatusInternalServerError, "Server error during registration.")
		}
		return
	}

	h.logger.Info("user registered", "email", req.Email)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully."})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and returns a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Email and password are required.")
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, err := h.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password produce identical responses.
		WriteError(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		h.logger.Error("failed to generate token", "user_id", user.ID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error during login.")
		return
	}

	h.logger.Info("user logged in", "user_id", user.ID)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Logged in successfully.",
		"token":   token,
		"user":    user,
	})
}
