package api

import (
	"harvest-planner/internal/api/handlers"
	"harvest-planner/internal/ports"
	"net/http"
)

// Deps are the services the HTTP API is composed from.
// Gateway and History are optional.
type Deps struct {
	Analyzer handlers.Analyzer
	Gateway  ports.AnalysisGateway
	Prices   handlers.LivePrices
	History  ports.RecommendationRepository
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	analysisHandler := &handlers.AnalysisHandler{Analyzer: d.Analyzer, Gateway: d.Gateway}
	marketHandler := &handlers.MarketHandler{Prices: d.Prices}
	historyHandler := &handlers.HistoryHandler{Repo: d.History}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/reference", handlers.Reference)
	mux.HandleFunc("/analysis", analysisHandler.Analyze)
	mux.HandleFunc("/analysis/ai", analysisHandler.AnalyzeAI)
	mux.HandleFunc("/markets/live", marketHandler.Live)
	mux.HandleFunc("/sensitivity", handlers.Sensitivity)
	mux.HandleFunc("/recommendations/history", historyHandler.List)

	return loggingMiddleware(mux)
}
