package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lmoretti/gara-planner/internal/domain"
)

func (h *Handler) GetAdjustments(w http.ResponseWriter, r *http.Request) {
	planID := r.URL.Query().Get("plan_id")
	if planID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "plan_id parameter is required",
		})
		return
	}

	set, err := h.adjustmentService.GetAdjustments(r.Context(), planID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AdjustmentsResponse{
		PlanID:      planID,
		Adjustments: domainSetToHTTP(set),
	})
}

func (h *Handler) SetFactor(w http.ResponseWriter, r *http.Request) {
	var req SetFactorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	set, err := h.adjustmentService.SetFactor(
		r.Context(), req.PlanID, req.PeriodIndex, domain.FactorKind(req.Kind), req.RefID, req.Percent)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AdjustmentsResponse{
		PlanID:      req.PlanID,
		Adjustments: domainSetToHTTP(set),
	})
}

func (h *Handler) AddPeriod(w http.ResponseWriter, r *http.Request) {
	var req AddPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	set, err := h.adjustmentService.AddPeriod(r.Context(), req.PlanID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AdjustmentsResponse{
		PlanID:      req.PlanID,
		Adjustments: domainSetToHTTP(set),
	})
}

func (h *Handler) RemovePeriod(w http.ResponseWriter, r *http.Request) {
	var req RemovePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	set, err := h.adjustmentService.RemovePeriod(r.Context(), req.PlanID, req.PeriodIndex)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AdjustmentsResponse{
		PlanID:      req.PlanID,
		Adjustments: domainSetToHTTP(set),
	})
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	planID := r.URL.Query().Get("plan_id")
	if planID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "plan_id parameter is required",
		})
		return
	}

	report, err := h.adjustmentService.GetReport(r.Context(), planID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(reportToHTTP(planID, report))
}
