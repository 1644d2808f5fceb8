package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/roomiesplit/roomiesplit/internal/middleware"
	"github.com/roomiesplit/roomiesplit/internal/models"
	"github.com/roomiesplit/roomiesplit/internal/storage"
)

// HouseholdHandler serves the owner-scoped household registry.
type HouseholdHandler struct {
	store  storage.Store
	logger *slog.Logger
}

// NewHouseholdHandler creates a new household handler.
func NewHouseholdHandler(store storage.Store, logger *slog.Logger) *HouseholdHandler {
	return &HouseholdHandler{store: store, logger: logger}
}

type createHouseholdRequest struct {
	HouseholdName string `json:"householdName"`
	// Pointer so an absent roommates field is distinguishable from an
	// empty list — the field must be present, but may be empty.
	Roommates *[]models.Roommate `json:"roommates"`
}

// Create creates a new household owned by the authenticated user.
func (h *HouseholdHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	var req createHouseholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "householdName and roommates are required.")
		return
	}
	if strings.TrimSpace(req.HouseholdName) == "" || req.Roommates == nil {
		WriteError(w, http.StatusBadRequest, "householdName and roommates are required.")
		return
	}

	household := &models.Household{
		OwnerID:   ownerID,
		Name:      req.HouseholdName,
		Roommates: *req.Roommates,
	}
	if household.Roommates == nil {
		household.Roommates = []models.Roommate{}
	}

	if err := h.store.CreateHousehold(r.Context(), household); err != nil {
		h.logger.Error("household creation failed", "owner_id", ownerID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error during household creation.")
		return
	}

	h.logger.Info("household created", "household_id", household.ID, "owner_id", ownerID)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "Household created successfully.",
		"household": household,
	})
}

// Get retrieves the authenticated user's household, or null if none exists.
func (h *HouseholdHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	household, err := h.store.GetHouseholdByOwner(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("failed to fetch household", "owner_id", ownerID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error fetching household.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"household": household})
}

type replaceRoommatesRequest struct {
	Roommates *[]models.Roommate `json:"roommates"`
}

// ReplaceRoommates replaces the household's entire roommate list. Only the
// owner may do this; a missing household and a foreign one both yield 404.
func (h *HouseholdHandler) ReplaceRoommates(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	householdID := r.PathValue("id")

	var req replaceRoommatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "roommates are required.")
		return
	}
	if req.Roommates == nil {
		WriteError(w, http.StatusBadRequest, "roommates are required.")
		return
	}

	household, err := h.store.ReplaceRoommates(r.Context(), householdID, ownerID, *req.Roommates)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Household not found.")
			return
		}
		h.logger.Error("failed to update household", "household_id", householdID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error updating household.")
		return
	}

	h.logger.Info("household updated", "household_id", householdID, "roommates", len(household.Roommates))
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Household updated successfully.",
		"household": household,
	})
}

// Delete removes the household. Same ownership-gated 404 semantics as
// ReplaceRoommates.
func (h *HouseholdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	householdID := r.PathValue("id")

	if err := h.store.DeleteHousehold(r.Context(), householdID, ownerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Household not found.")
			return
		}
		h.logger.Error("failed to delete household", "household_id", householdID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error deleting household.")
		return
	}

	h.logger.Info("household deleted", "household_id", householdID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Household deleted successfully."})
}
