package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"assetledger/cost"
	"assetledger/dates"
	"assetledger/middleware"
	"assetledger/models"
)

type AssetHandler struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

func NewAssetHandler(store Store, log *zap.Logger) *AssetHandler {
	return &AssetHandler{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// assetInput is the editable part of an asset. Status and assignment change
// only through the lifecycle endpoints.
type assetInput struct {
	ManagementTag      string           `json:"management_tag"`
	Serial             string           `json:"serial"`
	Model              string           `json:"model"`
	Ownership          models.Ownership `json:"ownership"`
	PurchaseDate       string           `json:"purchase_date"`
	ContractEndDate    string           `json:"contract_end_date"`
	ReturnDate         string           `json:"return_date"`
	PurchaseCost       int64            `json:"purchase_cost"`
	DepreciationMonths int              `json:"depreciation_months"`
	MonthlyCost        int64            `json:"monthly_cost"`
	Months             int              `json:"months"`
	Accessories        []string         `json:"accessories"`
	Note               string           `json:"note"`
}

func (in *assetInput) apply(a *models.Asset) error {
	var err error
	if a.PurchaseDate, err = dates.Parse(in.PurchaseDate); err != nil {
		return err
	}
	if a.ContractEndDate, err = dates.Parse(in.ContractEndDate); err != nil {
		return err
	}
	if a.ReturnDate, err = dates.Parse(in.ReturnDate); err != nil {
		return err
	}
	a.ManagementTag = in.ManagementTag
	a.Serial = in.Serial
	a.Model = in.Model
	a.Ownership = in.Ownership
	a.PurchaseCost = in.PurchaseCost
	a.DepreciationMonths = in.DepreciationMonths
	a.MonthlyCost = in.MonthlyCost
	a.Months = in.Months
	a.Accessories = in.Accessories
	a.Note = in.Note
	return a.Validate()
}

type assetView struct {
	*models.Asset
	Cost cost.Result `json:"cost"`
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	assets, err := h.store.ListAssets(r.Context(), user.TenantID)
	if err != nil {
		h.log.Error("failed to list assets", zap.Error(err), zap.String("tenant_id", user.TenantID))
		respondError(w, http.StatusInternalServerError, "Failed to list assets")
		return
	}
	respondJSON(w, http.StatusOK, assets)
}

func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	asset, err := h.store.GetAsset(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		respondLookupError(w, h.log, err, "Asset not found")
		return
	}

	now := h.now()
	respondJSON(w, http.StatusOK, assetView{
		Asset: asset,
		Cost:  cost.Compute(asset, now.Year(), int(now.Month())),
	})
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var body assetInput
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	asset := &models.Asset{TenantID: user.TenantID, Status: models.StatusAvailable}
	if err := body.apply(asset); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.CreateAsset(r.Context(), asset); err != nil {
		h.log.Error("failed to create asset", zap.Error(err), zap.String("tenant_id", user.TenantID))
		respondError(w, http.StatusInternalServerError, "Failed to create asset")
		return
	}

	h.log.Info("asset registered", zap.String("asset_id", asset.ID), zap.String("tenant_id", user.TenantID))
	respondJSON(w, http.StatusCreated, asset)
}

func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	asset, err := h.store.GetAsset(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		respondLookupError(w, h.log, err, "Asset not found")
		return
	}

	var body assetInput
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := body.apply(asset); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveAsset(r.Context(), asset); err != nil {
		h.log.Error("failed to update asset", zap.Error(err), zap.String("asset_id", asset.ID))
		respondError(w, http.StatusInternalServerError, "Failed to update asset")
		return
	}
	respondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	if err := h.store.DeleteAsset(r.Context(), user.TenantID, chi.URLParam(r, "id")); err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			h.log.Error("failed to delete asset", zap.Error(err))
		}
		respondError(w, code, "Failed to delete asset")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type assignRequest struct {
	UserID uint `json:"user_id"`
}

func (h *AssetHandler) Assign(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var body assignRequest
	if err := decodeJSON(r, &body); err != nil || body.UserID == 0 {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	assignee, err := h.store.GetUser(r.Context(), user.TenantID, body.UserID)
	if err != nil {
		respondLookupError(w, h.log, err, "User not found")
		return
	}

	h.transition(w, r, func(a *models.Asset) error {
		return a.Assign(assignee.ID)
	})
}

func (h *AssetHandler) Release(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, (*models.Asset).Release)
}

func (h *AssetHandler) Repair(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, (*models.Asset).SendToRepair)
}

func (h *AssetHandler) Maintenance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, (*models.Asset).StartMaintenance)
}

func (h *AssetHandler) Dispose(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, (*models.Asset).Dispose)
}

// transition loads the asset named in the URL, applies change and saves it.
func (h *AssetHandler) transition(w http.ResponseWriter, r *http.Request, change func(*models.Asset) error) {
	user := middleware.GetUserFromContext(r.Context())

	asset, err := h.store.GetAsset(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		respondLookupError(w, h.log, err, "Asset not found")
		return
	}

	from := asset.Status
	if err := change(asset); err != nil {
		if errors.Is(err, models.ErrAssetUnavailable) || errors.Is(err, models.ErrAssetDisposed) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveAsset(r.Context(), asset); err != nil {
		h.log.Error("failed to save asset", zap.Error(err), zap.String("asset_id", asset.ID))
		respondError(w, http.StatusInternalServerError, "Failed to update asset")
		return
	}

	h.log.Info("asset status changed",
		zap.String("asset_id", asset.ID),
		zap.String("from", string(from)),
		zap.String("to", string(asset.Status)),
	)
	respondJSON(w, http.StatusOK, asset)
}
