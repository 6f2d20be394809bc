package repository

import (
	"context"

	"github.com/lmoretti/gara-planner/internal/domain"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *domain.BusinessPlan) error
	GetByID(ctx context.Context, id string) (*domain.BusinessPlan, error)
	List(ctx context.Context) ([]*domain.BusinessPlanShort, error)
}
