package service

import (
	"context"

	"github.com/lmoretti/gara-planner/internal/adjust"
	"github.com/lmoretti/gara-planner/internal/domain"
	"github.com/lmoretti/gara-planner/internal/repository"
)

type adjustmentService struct {
	planRepo       repository.PlanRepository
	adjustmentRepo repository.AdjustmentRepository
}

// NewAdjustmentService создает новый экземпляр AdjustmentService
func NewAdjustmentService(planRepo repository.PlanRepository, adjustmentRepo repository.AdjustmentRepository) AdjustmentService {
	return &adjustmentService{
		planRepo:       planRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

func (s *adjustmentService) GetAdjustments(ctx context.Context, planID string) (domain.AdjustmentSet, error) {
	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return domain.AdjustmentSet{}, err
	}
	return plan.Adjustments, nil
}

// SetFactor - единственная точка мутации факторов: процент из формы
// проходит через движок, который не дает сохранить фактор 1.0.
func (s *adjustmentService) SetFactor(ctx context.Context, planID string, periodIndex int, kind domain.FactorKind, refID, percent string) (domain.AdjustmentSet, error) {
	if !domain.ValidFactorKind(kind) {
		return domain.AdjustmentSet{}, domain.ErrInvalidFactorKind
	}

	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return domain.AdjustmentSet{}, err
	}

	set := plan.Adjustments
	if periodIndex < 0 || periodIndex >= len(set.Periods) {
		return domain.AdjustmentSet{}, domain.ErrPeriodIndex
	}

	if err := s.checkRef(plan, kind, refID); err != nil {
		return domain.AdjustmentSet{}, err
	}

	periods := make([]domain.AdjustmentPeriod, len(set.Periods))
	copy(periods, set.Periods)
	period := periods[periodIndex]
	switch kind {
	case domain.KindProfile:
		period.ByProfile = adjust.UpsertFactor(period.ByProfile, refID, percent)
	case domain.KindTow:
		period.ByTow = adjust.UpsertFactor(period.ByTow, refID, percent)
	}
	periods[periodIndex] = period

	newSet := domain.AdjustmentSet{Periods: periods}
	if err := s.adjustmentRepo.Save(ctx, planID, newSet); err != nil {
		return domain.AdjustmentSet{}, err
	}

	return newSet, nil
}

func (s *adjustmentService) AddPeriod(ctx context.Context, planID string) (domain.AdjustmentSet, error) {
	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return domain.AdjustmentSet{}, err
	}

	newSet := domain.AdjustmentSet{
		Periods: adjust.AddPeriod(plan.Adjustments.Periods, plan.DurationMonths),
	}
	if err := s.adjustmentRepo.Save(ctx, planID, newSet); err != nil {
		return domain.AdjustmentSet{}, err
	}

	return newSet, nil
}

func (s *adjustmentService) RemovePeriod(ctx context.Context, planID string, periodIndex int) (domain.AdjustmentSet, error) {
	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return domain.AdjustmentSet{}, err
	}

	if periodIndex < 0 || periodIndex >= len(plan.Adjustments.Periods) {
		return domain.AdjustmentSet{}, domain.ErrPeriodIndex
	}

	newSet := domain.AdjustmentSet{
		Periods: adjust.RemovePeriod(plan.Adjustments.Periods, periodIndex, plan.DurationMonths),
	}
	if err := s.adjustmentRepo.Save(ctx, planID, newSet); err != nil {
		return domain.AdjustmentSet{}, err
	}

	return newSet, nil
}

func (s *adjustmentService) GetReport(ctx context.Context, planID string) (*AdjustmentReport, error) {
	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	return &AdjustmentReport{
		Periods:  adjust.Summarize(plan),
		Coverage: adjust.ComputeCoverage(plan.Adjustments.Periods, plan.DurationMonths),
	}, nil
}

func (s *adjustmentService) getPlan(ctx context.Context, planID string) (*domain.BusinessPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if err.Error() == "plan not found" {
			return nil, domain.NewNotFoundError("plan " + planID)
		}
		return nil, err
	}
	return plan, nil
}

// checkRef проверяет, что фактор ссылается на существующий профиль
// или корректируемую позицию каталога (consumo корректировать нельзя).
func (s *adjustmentService) checkRef(plan *domain.BusinessPlan, kind domain.FactorKind, refID string) error {
	switch kind {
	case domain.KindProfile:
		for _, member := range plan.Members {
			if member.ProfileID == refID {
				return nil
			}
		}
		return domain.NewNotFoundError("profile " + refID)

	case domain.KindTow:
		for _, item := range plan.Items {
			if item.TowID != refID {
				continue
			}
			if item.Type == domain.WorkTypeConsumo {
				return domain.ErrNotAdjustable
			}
			return nil
		}
		return domain.NewNotFoundError("work item " + refID)
	}

	return domain.ErrInvalidFactorKind
}
