package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"awaaz/internal/domain"
	"awaaz/internal/service"
)

// MockCommentService is a mock implementation of service.CommentService.
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Create(ctx context.Context, input service.CreateCommentInput) (*domain.Comment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) ListByPetition(ctx context.Context, petitionID uuid.UUID, offset, limit int) ([]domain.Comment, int, error) {
	args := m.Called(ctx, petitionID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Comment), args.Int(1), args.Error(2)
}
