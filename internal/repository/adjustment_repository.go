package repository

import (
	"context"

	"github.com/lmoretti/gara-planner/internal/domain"
)

type AdjustmentRepository interface {
	GetByPlanID(ctx context.Context, planID string) (domain.AdjustmentSet, error)
	Save(ctx context.Context, planID string, set domain.AdjustmentSet) error
}
