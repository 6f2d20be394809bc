package service

import (
	"context"

	"github.com/lmoretti/gara-planner/internal/adjust"
	"github.com/lmoretti/gara-planner/internal/domain"
)

// AdjustmentReport - по-периодные сводки плюс покрытие горизонта,
// то, что дашборд показывает на вкладке ректифик.
type AdjustmentReport struct {
	Periods  []adjust.PeriodSummary
	Coverage adjust.Coverage
}

type AdjustmentService interface {
	GetAdjustments(ctx context.Context, planID string) (domain.AdjustmentSet, error)
	SetFactor(ctx context.Context, planID string, periodIndex int, kind domain.FactorKind, refID, percent string) (domain.AdjustmentSet, error)
	AddPeriod(ctx context.Context, planID string) (domain.AdjustmentSet, error)
	RemovePeriod(ctx context.Context, planID string, periodIndex int) (domain.AdjustmentSet, error)
	GetReport(ctx context.Context, planID string) (*AdjustmentReport, error)
}
