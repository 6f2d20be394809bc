package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lmoretti/gara-planner/internal/domain"
)

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	plan := httpPlanToDomain(req)
	createdPlan, err := h.planService.CreatePlan(r.Context(), plan)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreatePlanResponse{
		Plan: domainPlanToHTTP(createdPlan),
	})
}

func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	planID := r.URL.Query().Get("plan_id")
	if planID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "plan_id parameter is required",
		})
		return
	}

	plan, err := h.planService.GetPlan(r.Context(), planID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainPlanToHTTP(plan))
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.ListPlans(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]PlanShortResponse, 0, len(plans))
	for _, plan := range plans {
		result = append(result, domainPlanShortToHTTP(plan))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListPlansResponse{Plans: result})
}
