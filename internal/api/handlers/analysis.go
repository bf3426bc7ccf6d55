package handlers

import (
	"context"
	"harvest-planner/internal/api/dto"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/platform/logger"
	"harvest-planner/internal/ports"
	"net/http"
)

// Analyzer runs the local analysis pipeline.
type Analyzer interface {
	Run(ctx context.Context, farm domain.FarmContext) domain.Result[*domain.AnalysisReport]
}

type AnalysisHandler struct {
	Analyzer Analyzer
	// Optional; /analysis/ai answers 503 without it.
	Gateway ports.AnalysisGateway
}

// Analyze runs the local pipeline. Pipeline failures still answer 200 with
// success=false and the fallback recommendation.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.AnalysisRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res := h.Analyzer.Run(r.Context(), req.FarmContext())
	writeJSON(w, r, http.StatusOK, res)
}

// AnalyzeAI forwards the farm to the external generation service and returns
// its document unchanged.
func (h *AnalysisHandler) AnalyzeAI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.Gateway == nil {
		writeError(w, r, http.StatusServiceUnavailable, "analysis gateway is not configured")
		return
	}

	var req dto.AnalysisRequest
	if !decodeBody(w, r, &req) {
		return
	}

	doc, err := h.Gateway.Analyze(r.Context(), req.FarmContext())
	if err != nil {
		logger.Errorf(r.Context(), "ai analysis failed: %v", err)
		status, msg := upstreamStatus(err)
		writeError(w, r, status, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, doc)
}
