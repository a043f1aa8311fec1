package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"assetledger/dates"
	"assetledger/middleware"
	"assetledger/models"
)

type RequestHandler struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

func NewRequestHandler(store Store, log *zap.Logger) *RequestHandler {
	return &RequestHandler{store: store, log: log, now: time.Now}
}

type requestInput struct {
	Type   models.RequestType `json:"type"`
	Date   string             `json:"date"`
	Detail string             `json:"detail"`
	Note   string             `json:"note"`
}

type statusInput struct {
	Status    models.RequestStatus `json:"status"`
	AdminNote string               `json:"admin_note"`
}

// List returns every request of the tenant to admins and only their own
// requests to employees.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var owner *uint
	if !user.IsAdmin() {
		owner = &user.ID
	}

	requests, err := h.store.ListRequests(r.Context(), user.TenantID, owner)
	if err != nil {
		h.log.Error("failed to list requests", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to list requests")
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var body requestInput
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !body.Type.Valid() {
		respondError(w, http.StatusBadRequest, "Invalid request type")
		return
	}

	date := dates.Day(h.now())
	if body.Date != "" {
		d, err := dates.Parse(body.Date)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		date = *d
	}

	req := &models.Request{
		TenantID: user.TenantID,
		Type:     body.Type,
		UserID:   user.ID,
		Date:     date,
		Status:   models.RequestPending,
		Detail:   body.Detail,
		Note:     body.Note,
	}
	if err := h.store.CreateRequest(r.Context(), req); err != nil {
		h.log.Error("failed to create request", zap.Error(err), zap.Uint("user_id", user.ID))
		respondError(w, http.StatusInternalServerError, "Failed to create request")
		return
	}

	h.log.Info("request submitted",
		zap.Uint("request_id", req.ID),
		zap.String("type", string(req.Type)),
		zap.Uint("user_id", user.ID),
	)
	respondJSON(w, http.StatusCreated, req)
}

func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := uintParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var body statusInput
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := h.store.GetRequest(r.Context(), user.TenantID, id)
	if err != nil {
		respondLookupError(w, h.log, err, "Request not found")
		return
	}

	if err := req.Transition(body.Status); err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	if body.AdminNote != "" {
		req.AdminNote = body.AdminNote
	}

	if err := h.store.SaveRequest(r.Context(), req); err != nil {
		h.log.Error("failed to save request", zap.Error(err), zap.Uint("request_id", id))
		respondError(w, http.StatusInternalServerError, "Failed to update request")
		return
	}

	h.log.Info("request status changed",
		zap.Uint("request_id", req.ID),
		zap.String("status", string(req.Status)),
		zap.Uint("admin_id", user.ID),
	)
	respondJSON(w, http.StatusOK, req)
}
