package handlers

import (
	"harvest-planner/internal/api/dto"
	"harvest-planner/internal/reference"
	"net/http"
)

// Health provides a minimal liveness check endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{"status": "ok"}
	writeJSON(w, r, http.StatusOK, res)
}

// Reference lists the crops, storage options and hire vehicles the form offers.
func Reference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ReferenceResponse{
		Crops:             reference.Crops(),
		StorageConditions: reference.StorageConditions(),
		TransportRates:    reference.TransportRates(),
	})
}
