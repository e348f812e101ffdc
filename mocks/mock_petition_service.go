package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"awaaz/internal/domain"
	"awaaz/internal/port"
	"awaaz/internal/service"
)

// MockPetitionService is a mock implementation of service.PetitionService.
type MockPetitionService struct {
	mock.Mock
}

func (m *MockPetitionService) Publish(ctx context.Context, input *service.PublishInput) (*domain.Petition, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Petition), args.Error(1)
}

func (m *MockPetitionService) SubmitDraft(ctx context.Context, userID uuid.UUID) (*domain.Petition, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Petition), args.Error(1)
}

func (m *MockPetitionService) GetByID(ctx context.Context, petitionID uuid.UUID) (*domain.Petition, error) {
	args := m.Called(ctx, petitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Petition), args.Error(1)
}

func (m *MockPetitionService) List(ctx context.Context, filter port.PetitionFilter, offset, limit int) ([]domain.Petition, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Petition), args.Int(1), args.Error(2)
}

func (m *MockPetitionService) Sign(ctx context.Context, input *service.SignInput) (*domain.Signature, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Signature), args.Error(1)
}

func (m *MockPetitionService) ListSignatures(ctx context.Context, petitionID uuid.UUID, offset, limit int) ([]domain.Signature, int, error) {
	args := m.Called(ctx, petitionID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Signature), args.Int(1), args.Error(2)
}

func (m *MockPetitionService) AllSignatures(ctx context.Context, petitionID, callerID uuid.UUID) (*domain.Petition, []domain.Signature, error) {
	args := m.Called(ctx, petitionID, callerID)
	var petition *domain.Petition
	var signatures []domain.Signature
	if args.Get(0) != nil {
		petition = args.Get(0).(*domain.Petition)
	}
	if args.Get(1) != nil {
		signatures = args.Get(1).([]domain.Signature)
	}
	return petition, signatures, args.Error(2)
}
