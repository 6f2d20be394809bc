package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lmoretti/gara-planner/internal/domain"
)

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(ctx context.Context, plan *domain.BusinessPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) GetByID(ctx context.Context, id string) (*domain.BusinessPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessPlan), args.Error(1)
}

func (m *MockPlanRepository) List(ctx context.Context) ([]*domain.BusinessPlanShort, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BusinessPlanShort), args.Error(1)
}

type MockAdjustmentRepository struct {
	mock.Mock
}

func (m *MockAdjustmentRepository) GetByPlanID(ctx context.Context, planID string) (domain.AdjustmentSet, error) {
	args := m.Called(ctx, planID)
	return args.Get(0).(domain.AdjustmentSet), args.Error(1)
}

func (m *MockAdjustmentRepository) Save(ctx context.Context, planID string, set domain.AdjustmentSet) error {
	args := m.Called(ctx, planID, set)
	return args.Error(0)
}
