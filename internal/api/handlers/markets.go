package handlers

import (
	"context"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/platform/logger"
	"net/http"
	"strconv"
)

// LivePrices serves cached live mandi prices.
type LivePrices interface {
	Get(ctx context.Context, cropID string, refresh bool) (*domain.LivePrices, error)
}

type MarketHandler struct {
	Prices LivePrices
}

// Live answers GET /markets/live?crop=wheat[&refresh=true].
func (h *MarketHandler) Live(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	crop := q.Get("crop")
	if crop == "" {
		writeError(w, r, http.StatusBadRequest, "crop is required")
		return
	}

	refresh := false
	if raw := q.Get("refresh"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "refresh must be a boolean")
			return
		}
		refresh = v
	}

	prices, err := h.Prices.Get(r.Context(), crop, refresh)
	if err != nil {
		logger.Errorf(r.Context(), "live prices crop=%s failed: %v", crop, err)
		status, msg := upstreamStatus(err)
		writeError(w, r, status, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"success": true, "data": prices})
}
