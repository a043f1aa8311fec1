package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"assetledger/dates"
	"assetledger/middleware"
	"assetledger/models"
)

type HistoryHandler struct {
	store Store
	log   *zap.Logger
}

func NewHistoryHandler(store Store, log *zap.Logger) *HistoryHandler {
	return &HistoryHandler{store: store, log: log}
}

type historyInput struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Company    string `json:"company"`
	Branch     string `json:"branch"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	userID, err := uintParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if !user.CanAccessUser(userID) {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}

	entries, err := h.store.ListUserHistory(r.Context(), user.TenantID, userID)
	if err != nil {
		h.log.Error("failed to list history", zap.Error(err), zap.Uint("user_id", userID))
		respondError(w, http.StatusInternalServerError, "Failed to list history")
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *HistoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	userID, err := uintParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if _, err := h.store.GetUser(r.Context(), user.TenantID, userID); err != nil {
		respondLookupError(w, h.log, err, "User not found")
		return
	}

	var body historyInput
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	start, err := dates.Parse(body.StartDate)
	if err != nil || start == nil {
		respondError(w, http.StatusBadRequest, "start_date is required (YYYY-MM-DD)")
		return
	}
	end, err := dates.Parse(body.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid end_date")
		return
	}
	if end != nil && dates.Before(*end, *start) {
		respondError(w, http.StatusBadRequest, "end_date must not precede start_date")
		return
	}

	entry := &models.EmploymentHistory{
		TenantID:   user.TenantID,
		UserID:     userID,
		StartDate:  *start,
		EndDate:    end,
		Company:    body.Company,
		Branch:     body.Branch,
		Department: body.Department,
		Position:   body.Position,
	}
	if err := h.store.CreateHistory(r.Context(), entry); err != nil {
		h.log.Error("failed to create history", zap.Error(err), zap.Uint("user_id", userID))
		respondError(w, http.StatusInternalServerError, "Failed to create history entry")
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}
