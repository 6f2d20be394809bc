package service

import (
	"context"

	"github.com/lmoretti/gara-planner/internal/domain"
)

type PlanService interface {
	CreatePlan(ctx context.Context, plan *domain.BusinessPlan) (*domain.BusinessPlan, error)
	GetPlan(ctx context.Context, id string) (*domain.BusinessPlan, error)
	ListPlans(ctx context.Context) ([]*domain.BusinessPlanShort, error)
}
