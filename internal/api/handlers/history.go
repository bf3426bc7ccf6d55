package handlers

import (
	"harvest-planner/internal/api/dto"
	"harvest-planner/internal/platform/logger"
	"harvest-planner/internal/ports"
	"net/http"
	"strconv"
	"strings"
)

type HistoryHandler struct {
	Repo ports.RecommendationRepository
}

// List answers GET /recommendations/history?user_id=...[&limit=n].
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.Repo == nil {
		writeError(w, r, http.StatusServiceUnavailable, "history is not configured")
		return
	}

	q := r.URL.Query()
	userID := strings.TrimSpace(q.Get("user_id"))
	if userID == "" {
		writeError(w, r, http.StatusBadRequest, "user_id is required")
		return
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := h.Repo.ListByUser(r.Context(), userID, limit)
	if err != nil {
		logger.Errorf(r.Context(), "list history user=%s failed: %v", userID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.HistoryResponse{UserID: userID, Entries: entries})
}
