package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lmoretti/gara-planner/internal/domain"
)

func testPlan() *domain.BusinessPlan {
	return &domain.BusinessPlan{
		ID:             "plan-1",
		Name:           "Gara Regione 2026",
		DurationMonths: 24,
		Members: []domain.TeamMember{
			{ProfileID: "p1", Label: "Architect", FTE: 1, DailyRate: 400},
			{ProfileID: "p2", Label: "Developer", FTE: 3, DailyRate: 250},
		},
		Items: []domain.WorkItem{
			{TowID: "t1", Label: "Change requests", Type: domain.WorkTypeTask, NumTasks: 10},
			{TowID: "c1", Label: "Setup", Type: domain.WorkTypeCorpo, DurationMonths: 12},
			{TowID: "x1", Label: "Cloud usage", Type: domain.WorkTypeConsumo},
		},
		Adjustments: domain.AdjustmentSet{
			Periods: []domain.AdjustmentPeriod{
				{MonthStart: 1, MonthEnd: 12, ByProfile: map[string]float64{}, ByTow: map[string]float64{}},
				{MonthStart: 13, MonthEnd: 24, ByProfile: map[string]float64{"p1": 0.8}, ByTow: map[string]float64{}},
			},
		},
	}
}

func TestAdjustmentService_SetFactor(t *testing.T) {
	t.Run("успешная установка фактора профиля", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockAdjustmentRepo := new(MockAdjustmentRepository)
		service := NewAdjustmentService(mockPlanRepo, mockAdjustmentRepo)

		mockPlanRepo.On("GetByID", mock.Anything, "plan-1").Return(testPlan(), nil).Once()
		mockAdjustmentRepo.On("Save", mock.Anything, "plan-1", mock.Anything).Return(nil).Once()

		set, err := service.SetFactor(context.Background(), "plan-1", 0, domain.KindProfile, "p1", "80")

		require.NoError(t, err)
		assert.Equal(t, 0.8, set.Periods[0].ByProfile["p1"])
		mockPlanRepo.AssertExpectations(t)
		mockAdjustmentRepo.AssertExpectations(t)
	})

	t.Run("100 процентов удаляет фактор", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockAdjustmentRepo := new(MockAdjustmentRepository)
		service := NewAdjustmentService(mockPlanRepo, mockAdjustmentRepo)

		mockPlanRepo.On("GetByID", mock.Anything, "plan-1").Return(testPlan(), nil).Once()
		mockAdjustmentRepo.On("Save", mock.Anything, "plan-1", mock.Anything).Return(nil).Once()

		set, err := service.SetFactor(context.Background(), "plan-1", 1, domain.KindProfile, "p1", "100")

		require.NoError(t, err)
		assert.Empty(t, set.Periods[1].ByProfile)
		assert.False(t, set.HasAdjustments())
	})

	t.Run("ошибка: индекс периода вне диапазона", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockAdjustmentRepo := new(MockAdjustmentRepository)
		service := NewAdjustmentService(mockPlanRepo, mockAdjustmentRepo)

		mockPlanRepo.On("GetByID", mock.Anything, "plan-1").Return(testPlan(), nil).Once()

		_, err := service.SetFactor(context.Background(), "plan-1", 5, domain.KindProfile, "p1", "80")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPeriodIndex))
		mockAdjustmentRepo.AssertNotCalled(t, "Save")
	})

	t.Run("ошибка: неизвестный профиль", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockAdjustmentRepo := new(MockAdjustmentRepository)
		service := NewAdjustmentService(mockPlanRepo, mockAdjustmentRepo)

		mockPlanRepo.On("GetByID", mock.Anything, "plan-1").Return(testPlan(), nil).Once()

		_, err := service.SetFactor(context.Background(), "plan-1", 0, domain.KindProfile, "p9", "80")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("ошибка: consumo не корректируется", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockAdjustmentRepo := new(MockAdjustmentRepository)
		service := NewAdjustmentService(mockPlanRepo, mockAdjustmentRepo)

		mockPlanRepo.On("GetByID", mock.Anything, "plan-1").Return(testPlan(), nil).Once()

		_, err := service.SetFactor(context.Background(), "plan-1", 0, domain.KindTow, "x1", "50")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotAdjustable))
		mockAdjustmentRepo.AssertNotCalled(t, "Save")
	})

	t.Run("ошибка: недопустимый kind", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockAdjustmentRepo := new(MockAdjustmentRepository)
		service := NewAdjustmentService(mockPlanRepo, mockAdjustmentRepo)

		_, err := service.SetFactor(context.Background(), "plan-1", 0, domain.FactorKind("bogus"), "p1", "80")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidFactorKind))
		mockPlanRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("нечисловой процент эквивалентен 100", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockAdjustmentRepo := new(MockAdjustmentRepository)
		service := NewAdjustmentService(mockPlanRepo, mockAdjustmentRepo)

		mockPlanRepo.On("GetByID", mock.Anything, "plan-1").Return(testPlan(), nil).Once()
		mockAdjustmentRepo.On("Save", mock.Anything, "plan-1", mock.Anything).Return(nil).Once()

		set, err := service.SetFactor(context.Background(), "plan-1", 1, domain.KindProfile, "p1", "not a number")

		require.NoError(t, err)
		assert.Empty(t, set.Periods[1].ByProfile)
	})
}

func TestAdjustmentService_AddPeriod(t *testing.T) {
	t.Run("новый период за последним занятым месяцем", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockAdjustmentRepo := new(MockAdjustmentRepository)
		service := NewAdjustmentService(mockPlanRepo, mockAdjustmentRepo)

		plan := testPlan()
		plan.DurationMonths = 40
		mockPlanRepo.On("GetByID", mock.Anything, "plan-1").Return(plan, nil).Once()
		mockAdjustmentRepo.On("Save", mock.Anything, "plan-1", mock.Anything).Return(nil).Once()

		set, err := service.AddPeriod(context.Background(), "plan-1")

		require.NoError(t, err)
		require.Len(t, set.Periods, 3)
		assert.Equal(t, 25, set.Periods[2].MonthStart)
		assert.Equal(t, 36, set.Periods[2].MonthEnd)
	})

	t.Run("ошибка: план не найден", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockAdjustmentRepo := new(MockAdjustmentRepository)
		service := NewAdjustmentService(mockPlanRepo, mockAdjustmentRepo)

		mockPlanRepo.On("GetByID", mock.Anything, "missing").Return(nil, errors.New("plan not found")).Once()

		_, err := service.AddPeriod(context.Background(), "missing")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestAdjustmentService_RemovePeriod(t *testing.T) {
	t.Run("удаление последнего периода дает период по умолчанию", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockAdjustmentRepo := new(MockAdjustmentRepository)
		service := NewAdjustmentService(mockPlanRepo, mockAdjustmentRepo)

		plan := testPlan()
		plan.Adjustments = domain.AdjustmentSet{
			Periods: []domain.AdjustmentPeriod{
				{MonthStart: 1, MonthEnd: 12, ByProfile: map[string]float64{"p1": 0.5}},
			},
		}
		mockPlanRepo.On("GetByID", mock.Anything, "plan-1").Return(plan, nil).Once()
		mockAdjustmentRepo.On("Save", mock.Anything, "plan-1", mock.Anything).Return(nil).Once()

		set, err := service.RemovePeriod(context.Background(), "plan-1", 0)

		require.NoError(t, err)
		require.Len(t, set.Periods, 1)
		assert.Equal(t, 1, set.Periods[0].MonthStart)
		assert.Equal(t, 24, set.Periods[0].MonthEnd)
		assert.Empty(t, set.Periods[0].ByProfile)
	})

	t.Run("ошибка: индекс вне диапазона", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockAdjustmentRepo := new(MockAdjustmentRepository)
		service := NewAdjustmentService(mockPlanRepo, mockAdjustmentRepo)

		mockPlanRepo.On("GetByID", mock.Anything, "plan-1").Return(testPlan(), nil).Once()

		_, err := service.RemovePeriod(context.Background(), "plan-1", 7)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPeriodIndex))
		mockAdjustmentRepo.AssertNotCalled(t, "Save")
	})
}

func TestAdjustmentService_GetReport(t *testing.T) {
	t.Run("сводка и покрытие по всем периодам", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockAdjustmentRepo := new(MockAdjustmentRepository)
		service := NewAdjustmentService(mockPlanRepo, mockAdjustmentRepo)

		mockPlanRepo.On("GetByID", mock.Anything, "plan-1").Return(testPlan(), nil).Once()

		report, err := service.GetReport(context.Background(), "plan-1")

		require.NoError(t, err)
		require.Len(t, report.Periods, 2)
		assert.Empty(t, report.Periods[0].Profiles)
		require.Len(t, report.Periods[1].Profiles, 1)
		assert.Equal(t, "p1", report.Periods[1].Profiles[0].ProfileID)
		assert.Equal(t, 24, report.Coverage.CoveredMonths)
		assert.True(t, report.Coverage.IsComplete)
	})
}
