package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"awaaz/internal/wizard"
)

// MockDraftService is a mock implementation of service.DraftService.
type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) Get(ctx context.Context, userID uuid.UUID) *wizard.Draft {
	args := m.Called(ctx, userID)
	return args.Get(0).(*wizard.Draft)
}

func (m *MockDraftService) Save(ctx context.Context, userID uuid.UUID, d *wizard.Draft) error {
	args := m.Called(ctx, userID, d)
	return args.Error(0)
}

func (m *MockDraftService) Reset(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockDraftService) Verify(ctx context.Context, userID, challengeID uuid.UUID, code string) (*wizard.Draft, error) {
	args := m.Called(ctx, userID, challengeID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wizard.Draft), args.Error(1)
}
