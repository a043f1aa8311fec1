package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"assetledger/export"
	"assetledger/middleware"
	"assetledger/report"
)

type ReportHandler struct {
	store Store
	mode  report.Mode
	log   *zap.Logger
	now   func() time.Time
}

func NewReportHandler(store Store, mode report.Mode, log *zap.Logger) *ReportHandler {
	return &ReportHandler{store: store, mode: mode, log: log, now: time.Now}
}

// build loads the tenant snapshot and aggregates it for the requested month.
// It writes the error response itself and returns nil on failure.
func (h *ReportHandler) build(w http.ResponseWriter, r *http.Request) *report.Report {
	user := middleware.GetUserFromContext(r.Context())

	year, month, err := parseYearMonth(r, h.now())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil
	}

	in, err := h.store.Snapshot(r.Context(), user.TenantID)
	if err != nil {
		h.log.Error("failed to load report data", zap.Error(err), zap.String("tenant_id", user.TenantID))
		respondError(w, http.StatusInternalServerError, "Failed to load report data")
		return nil
	}
	return report.Build(in, year, month, h.mode)
}

func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	rep := h.build(w, r)
	if rep == nil {
		return
	}
	respondJSON(w, http.StatusOK, rep)
}

func (h *ReportHandler) MonthlyCSV(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("section")
	if name == "" {
		name = string(export.SectionCosts)
	}
	section, err := export.ParseSection(name)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep := h.build(w, r)
	if rep == nil {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rep, section); err != nil {
		h.log.Error("failed to write csv", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to export report")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(export.Filename(rep.Year, rep.Month, section, "csv")))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *ReportHandler) MonthlyXLSX(w http.ResponseWriter, r *http.Request) {
	rep := h.build(w, r)
	if rep == nil {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, rep); err != nil {
		h.log.Error("failed to write xlsx", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to export report")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", attachment(export.Filename(rep.Year, rep.Month, "", "xlsx")))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	year, month, err := parseYearMonth(r, h.now())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	assets, err := h.store.ListAssets(r.Context(), user.TenantID)
	if err != nil {
		h.log.Error("failed to list assets", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	requests, err := h.store.ListRequests(r.Context(), user.TenantID, nil)
	if err != nil {
		h.log.Error("failed to list requests", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	respondJSON(w, http.StatusOK, report.ComputeKPI(assets, requests, year, month))
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
