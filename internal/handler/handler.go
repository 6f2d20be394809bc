package handler

import "github.com/lmoretti/gara-planner/internal/service"

type Handler struct {
	planService       service.PlanService
	adjustmentService service.AdjustmentService
}

func NewHandler(
	planService service.PlanService,
	adjustmentService service.AdjustmentService,
) *Handler {
	return &Handler{
		planService:       planService,
		adjustmentService: adjustmentService,
	}
}
