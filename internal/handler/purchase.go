package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/roomiesplit/roomiesplit/internal/calculator"
	"github.com/roomiesplit/roomiesplit/internal/models"
	"github.com/roomiesplit/roomiesplit/internal/storage"
)

// PurchaseHandler serves the purchase ledger.
type PurchaseHandler struct {
	store  storage.Store
	logger *slog.Logger
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(store storage.Store, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{store: store, logger: logger}
}

// purchaseRequest carries purchase fields for both creation and partial
// updates. Pointers distinguish absent fields from zero values.
type purchaseRequest struct {
	Date        *string   `json:"date"`
	Name        *string   `json:"name"`
	Cost        *float64  `json:"cost"`
	Category    *string   `json:"category"`
	Person      *string   `json:"person"`
	Assignees   *[]string `json:"assignees"`
	HouseholdID *string   `json:"householdId"`
}

// Create records a new purchase. All six core fields are required; the
// assignees field must be present but may be an empty list.
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "All purchase fields are required.")
		return
	}

	if req.Date == nil || strings.TrimSpace(*req.Date) == "" ||
		req.Name == nil || strings.TrimSpace(*req.Name) == "" ||
		req.Cost == nil ||
		req.Category == nil || strings.TrimSpace(*req.Category) == "" ||
		req.Person == nil || strings.TrimSpace(*req.Person) == "" ||
		req.Assignees == nil {
		WriteError(w, http.StatusBadRequest, "All purchase fields are required.")
		return
	}
	if *req.Cost < 0 {
		WriteError(w, http.StatusBadRequest, "cost must be a non-negative number.")
		return
	}

	purchase := &models.Purchase{
		Date:      *req.Date,
		Name:      *req.Name,
		Cost:      *req.Cost,
		Category:  *req.Category,
		Person:    *req.Person,
		Assignees: *req.Assignees,
	}
	if purchase.Assignees == nil {
		purchase.Assignees = []string{}
	}
	if req.HouseholdID != nil {
		purchase.HouseholdID = *req.HouseholdID
	}

	if err := h.store.CreatePurchase(r.Context(), purchase); err != nil {
		h.logger.Error("failed to create purchase", "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error while creating purchase.")
		return
	}

	applySplit(purchase)
	h.logger.Info("purchase created", "purchase_id", purchase.ID, "cost", purchase.Cost)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Purchase created successfully.",
		"purchase": purchase,
	})
}

// List returns every purchase in the system. The listing is deliberately not
// scoped to the caller or a household.
func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.store.ListPurchases(r.Context())
	if err != nil {
		h.logger.Error("failed to list purchases", "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error fetching purchases.")
		return
	}

	for i := range purchases {
		applySplit(&purchases[i])
	}

	writeJSON(w, http.StatusOK, map[string]any{"purchases": purchases})
}

// Update applies a partial or full field set to an existing purchase.
// Unspecified fields retain their prior values.
func (h *PurchaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.store.GetPurchase(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get purchase", "purchase_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error updating purchase.")
		return
	}
	if existing == nil {
		WriteError(w, http.StatusNotFound, "Purchase not found.")
		return
	}

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid purchase data.")
		return
	}

	if req.Date != nil {
		existing.Date = *req.Date
	}
	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Cost != nil {
		if *req.Cost < 0 {
			WriteError(w, http.StatusBadRequest, "cost must be a non-negative number.")
			return
		}
		existing.Cost = *req.Cost
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Person != nil {
		existing.Person = *req.Person
	}
	if req.Assignees != nil {
		existing.Assignees = *req.Assignees
		if existing.Assignees == nil {
			existing.Assignees = []string{}
		}
	}
	if req.HouseholdID != nil {
		existing.HouseholdID = *req.HouseholdID
	}

	if err := h.store.UpdatePurchase(r.Context(), existing); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Purchase not found.")
			return
		}
		h.logger.Error("failed to update purchase", "purchase_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error updating purchase.")
		return
	}

	applySplit(existing)
	h.logger.Info("purchase updated", "purchase_id", id)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Purchase updated successfully.",
		"purchase": existing,
	})
}

// Delete removes a purchase by ID.
func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.DeletePurchase(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Purchase not found.")
			return
		}
		h.logger.Error("failed to delete purchase", "purchase_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error deleting purchase.")
		return
	}

	h.logger.Info("purchase deleted", "purchase_id", id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Purchase deleted successfully."})
}

// applySplit populates the presentational per-assignee share. An empty
// assignee list leaves it unset ("not applicable").
func applySplit(p *models.Purchase) {
	if amount, ok := calculator.SplitAmount(p.Cost, p.Assignees); ok {
		p.SplitAmount = &amount
	} else {
		p.SplitAmount = nil
	}
}
