package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/lmoretti/gara-planner/internal/adjust"
	"github.com/lmoretti/gara-planner/internal/domain"
	"github.com/lmoretti/gara-planner/internal/repository"
)

type planService struct {
	planRepo repository.PlanRepository
}

// NewPlanService создает новый экземпляр PlanService
func NewPlanService(planRepo repository.PlanRepository) PlanService {
	return &planService{planRepo: planRepo}
}

// CreatePlan валидирует и сохраняет новый бизнес-план.
// Новый план всегда получает хотя бы один период корректировок
// на весь горизонт: набор периодов не бывает пустым.
func (s *planService) CreatePlan(ctx context.Context, plan *domain.BusinessPlan) (*domain.BusinessPlan, error) {
	if plan.DurationMonths < 1 {
		return nil, domain.ErrInvalidDuration
	}
	for _, member := range plan.Members {
		if member.FTE < 0 {
			return nil, domain.ErrInvalidFTE
		}
	}
	for _, item := range plan.Items {
		if !domain.ValidWorkType(item.Type) {
			return nil, domain.ErrInvalidWorkType
		}
	}

	plan.ID = uuid.New().String()
	plan.UpdatedAt = nil
	if len(plan.Adjustments.Periods) == 0 {
		plan.Adjustments = domain.AdjustmentSet{
			Periods: []domain.AdjustmentPeriod{adjust.DefaultPeriod(plan.DurationMonths)},
		}
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	// ON CONFLICT проставил updated_at - имя уже занято
	if plan.UpdatedAt != nil {
		return nil, domain.ErrPlanExists
	}

	created, err := s.planRepo.GetByID(ctx, plan.ID)
	if err != nil {
		if err.Error() == "plan not found" {
			return nil, domain.NewNotFoundError("plan " + plan.ID)
		}
		return nil, err
	}

	return created, nil
}

// GetPlan получает план вместе с командой, каталогом и корректировками
func (s *planService) GetPlan(ctx context.Context, id string) (*domain.BusinessPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if err.Error() == "plan not found" {
			return nil, domain.NewNotFoundError("plan " + id)
		}
		return nil, err
	}

	return plan, nil
}

func (s *planService) ListPlans(ctx context.Context) ([]*domain.BusinessPlanShort, error) {
	return s.planRepo.List(ctx)
}
