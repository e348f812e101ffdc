package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"awaaz/internal/domain"
)

// MockDraftStore is a mock implementation of port.DraftStore.
type MockDraftStore struct {
	mock.Mock
}

func (m *MockDraftStore) Save(ctx context.Context, rec *domain.DraftRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockDraftStore) Load(ctx context.Context, userID uuid.UUID) (*domain.DraftRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DraftRecord), args.Error(1)
}

func (m *MockDraftStore) Clear(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
