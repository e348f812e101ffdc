package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"awaaz/internal/domain"
)

// MockSignatureRepo is a mock implementation of port.SignatureRepository.
type MockSignatureRepo struct {
	mock.Mock
}

func (m *MockSignatureRepo) Create(ctx context.Context, s *domain.Signature) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSignatureRepo) GetByPetitionAndUser(ctx context.Context, petitionID, userID uuid.UUID) (*domain.Signature, error) {
	args := m.Called(ctx, petitionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Signature), args.Error(1)
}

func (m *MockSignatureRepo) ListByPetition(ctx context.Context, petitionID uuid.UUID, offset, limit int) ([]domain.Signature, int, error) {
	args := m.Called(ctx, petitionID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Signature), args.Int(1), args.Error(2)
}

func (m *MockSignatureRepo) ListAllByPetition(ctx context.Context, petitionID uuid.UUID) ([]domain.Signature, error) {
	args := m.Called(ctx, petitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Signature), args.Error(1)
}
