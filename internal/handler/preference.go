package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/roomiesplit/roomiesplit/internal/middleware"
	"github.com/roomiesplit/roomiesplit/internal/storage"
)

// PreferenceHandler serves per-user UI preferences.
type PreferenceHandler struct {
	store  storage.Store
	logger *slog.Logger
}

// NewPreferenceHandler creates a new preference handler.
func NewPreferenceHandler(store storage.Store, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{store: store, logger: logger}
}

type preferencesRequest struct {
	// Pointer so a missing or non-boolean value is rejected rather than
	// silently defaulting to false.
	DarkModeEnabled *bool `json:"darkModeEnabled"`
}

// UpdateDarkMode stores the authenticated user's dark-mode flag.
// Idempotent: sending the same value twice leaves the last value stored.
func (h *PreferenceHandler) UpdateDarkMode(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DarkModeEnabled == nil {
		WriteError(w, http.StatusBadRequest, "Invalid value for darkModeEnabled.")
		return
	}

	user, err := h.store.SetDarkMode(r.Context(), userID, *req.DarkModeEnabled)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "User not found.")
			return
		}
		h.logger.Error("failed to update preferences", "user_id", userID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error updating preferences.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":         "Preferences updated.",
		"darkModeEnabled": user.DarkModeEnabled,
	})
}
