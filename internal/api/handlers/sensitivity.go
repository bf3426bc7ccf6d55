package handlers

import (
	"harvest-planner/internal/api/dto"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/services"
	"net/http"
)

// Sensitivity answers POST /sensitivity with the per-day revenue curve.
func Sensitivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SensitivityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in, err := services.ResolveInputs(domain.FarmContext{
		CropID:      req.Crop,
		Quantity:    req.Quantity,
		StorageType: req.StorageType,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		status, msg := upstreamStatus(err)
		writeError(w, r, status, msg)
		return
	}

	report, err := services.Sensitivity(services.SensitivityInputs{
		RevenueInputs:  in,
		Market:         req.Market(),
		Days:           req.Days,
		FuelMultiplier: req.FuelMultiplier,
		LossMultiplier: req.LossMultiplier,
	})
	if err != nil {
		status, msg := upstreamStatus(err)
		writeError(w, r, status, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, report)
}
