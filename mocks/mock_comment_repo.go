package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"awaaz/internal/domain"
)

// MockCommentRepo is a mock implementation of port.CommentRepository.
type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommentRepo) ListByPetition(ctx context.Context, petitionID uuid.UUID, offset, limit int) ([]domain.Comment, int, error) {
	args := m.Called(ctx, petitionID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Comment), args.Int(1), args.Error(2)
}
