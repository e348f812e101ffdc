package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"awaaz/internal/domain"
	"awaaz/internal/port"
)

// MockPetitionRepo is a mock implementation of port.PetitionRepository.
type MockPetitionRepo struct {
	mock.Mock
}

func (m *MockPetitionRepo) Create(ctx context.Context, p *domain.Petition) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPetitionRepo) GetByID(ctx context.Context, petitionID uuid.UUID) (*domain.Petition, error) {
	args := m.Called(ctx, petitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Petition), args.Error(1)
}

func (m *MockPetitionRepo) List(ctx context.Context, filter port.PetitionFilter, offset, limit int) ([]domain.Petition, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Petition), args.Int(1), args.Error(2)
}

func (m *MockPetitionRepo) IncrementSignatureCount(ctx context.Context, petitionID uuid.UUID) error {
	args := m.Called(ctx, petitionID)
	return args.Error(0)
}

func (m *MockPetitionRepo) UpdateStatus(ctx context.Context, petitionID uuid.UUID, status domain.PetitionStatus) error {
	args := m.Called(ctx, petitionID, status)
	return args.Error(0)
}
