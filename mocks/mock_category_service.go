package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"awaaz/internal/domain"
	"awaaz/internal/service"
)

// MockCategoryService is a mock implementation of service.CategoryService.
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context) []domain.Category {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category)
}

func (m *MockCategoryService) Create(ctx context.Context, input service.CreateCategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
