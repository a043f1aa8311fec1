package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"assetledger/dates"
	"assetledger/models"
	"assetledger/store"
)

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrAssetUnavailable),
		errors.Is(err, models.ErrAssetDisposed):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondLookupError answers a failed load of a single record. Anything but
// a missing record is logged and reported without detail.
func respondLookupError(w http.ResponseWriter, log *zap.Logger, err error, notFoundMessage string) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Error("failed to load record", zap.Error(err))
		respondError(w, code, "Internal server error")
		return
	}
	respondError(w, code, notFoundMessage)
}

func uintParam(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseYearMonth reads ?year=&month=, defaulting each to the current month.
func parseYearMonth(r *http.Request, now time.Time) (int, int, error) {
	year, month := now.Year(), int(now.Month())
	if s := r.URL.Query().Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, errors.New("invalid year")
		}
		year = y
	}
	if s := r.URL.Query().Get("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, errors.New("invalid month")
		}
		month = m
	}
	if err := dates.ValidateMonth(year, month); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}
