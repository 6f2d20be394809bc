package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lmoretti/gara-planner/internal/domain"
)

func TestPlanService_CreatePlan(t *testing.T) {
	t.Run("успешное создание плана", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		service := NewPlanService(mockPlanRepo)
		ctx := context.Background()

		plan := &domain.BusinessPlan{
			Name:           "Gara Regione 2026",
			DurationMonths: 36,
			Members: []domain.TeamMember{
				{ProfileID: "p1", Label: "Architect", FTE: 1, DailyRate: 400},
			},
			Items: []domain.WorkItem{
				{TowID: "t1", Label: "Change requests", Type: domain.WorkTypeTask, NumTasks: 20},
			},
		}

		created := &domain.BusinessPlan{
			Name:           "Gara Regione 2026",
			DurationMonths: 36,
			CreatedAt:      time.Now(),
		}

		mockPlanRepo.On("Create", mock.Anything, plan).Return(nil).Once()
		mockPlanRepo.On("GetByID", mock.Anything, mock.Anything).Return(created, nil).Once()

		result, err := service.CreatePlan(ctx, plan)

		require.NoError(t, err)
		assert.Equal(t, created.Name, result.Name)
		assert.NotEmpty(t, plan.ID)
		// новый план получает период по умолчанию на весь горизонт
		require.Len(t, plan.Adjustments.Periods, 1)
		assert.Equal(t, 1, plan.Adjustments.Periods[0].MonthStart)
		assert.Equal(t, 36, plan.Adjustments.Periods[0].MonthEnd)
		mockPlanRepo.AssertExpectations(t)
	})

	t.Run("ошибка: длительность меньше месяца", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		service := NewPlanService(mockPlanRepo)

		plan := &domain.BusinessPlan{Name: "empty", DurationMonths: 0}

		result, err := service.CreatePlan(context.Background(), plan)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrInvalidDuration))
	})

	t.Run("ошибка: отрицательный FTE", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		service := NewPlanService(mockPlanRepo)

		plan := &domain.BusinessPlan{
			Name:           "bad fte",
			DurationMonths: 12,
			Members:        []domain.TeamMember{{ProfileID: "p1", FTE: -1}},
		}

		result, err := service.CreatePlan(context.Background(), plan)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrInvalidFTE))
	})

	t.Run("ошибка: неизвестный тип позиции", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		service := NewPlanService(mockPlanRepo)

		plan := &domain.BusinessPlan{
			Name:           "bad type",
			DurationMonths: 12,
			Items:          []domain.WorkItem{{TowID: "t1", Type: domain.WorkType("hourly")}},
		}

		result, err := service.CreatePlan(context.Background(), plan)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrInvalidWorkType))
	})

	t.Run("ошибка: имя плана уже занято", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		service := NewPlanService(mockPlanRepo)

		plan := &domain.BusinessPlan{Name: "duplicate", DurationMonths: 12}

		// ON CONFLICT в репозитории проставляет updated_at существующего плана
		mockPlanRepo.On("Create", mock.Anything, plan).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.BusinessPlan)
			now := time.Now()
			p.UpdatedAt = &now
		}).Return(nil).Once()

		result, err := service.CreatePlan(context.Background(), plan)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrPlanExists))
		mockPlanRepo.AssertExpectations(t)
	})
}

func TestPlanService_GetPlan(t *testing.T) {
	t.Run("успешное получение плана", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		service := NewPlanService(mockPlanRepo)

		plan := &domain.BusinessPlan{ID: "plan-1", Name: "Gara Regione 2026", DurationMonths: 36}
		mockPlanRepo.On("GetByID", mock.Anything, "plan-1").Return(plan, nil).Once()

		result, err := service.GetPlan(context.Background(), "plan-1")

		require.NoError(t, err)
		assert.Equal(t, plan.Name, result.Name)
		mockPlanRepo.AssertExpectations(t)
	})

	t.Run("ошибка: план не найден", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		service := NewPlanService(mockPlanRepo)

		mockPlanRepo.On("GetByID", mock.Anything, "missing").Return(nil, errors.New("plan not found")).Once()

		result, err := service.GetPlan(context.Background(), "missing")

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestPlanService_ListPlans(t *testing.T) {
	mockPlanRepo := new(MockPlanRepository)
	service := NewPlanService(mockPlanRepo)

	plans := []*domain.BusinessPlanShort{
		{ID: "plan-1", Name: "Gara A", DurationMonths: 12},
		{ID: "plan-2", Name: "Gara B", DurationMonths: 24},
	}
	mockPlanRepo.On("List", mock.Anything).Return(plans, nil).Once()

	result, err := service.ListPlans(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
	mockPlanRepo.AssertExpectations(t)
}
