package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"awaaz/internal/domain"
)

// MockOTPChallengeRepo is a mock implementation of port.OTPChallengeRepository.
type MockOTPChallengeRepo struct {
	mock.Mock
}

func (m *MockOTPChallengeRepo) Create(ctx context.Context, ch *domain.OTPChallenge) error {
	args := m.Called(ctx, ch)
	return args.Error(0)
}

func (m *MockOTPChallengeRepo) GetByID(ctx context.Context, challengeID uuid.UUID) (*domain.OTPChallenge, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OTPChallenge), args.Error(1)
}

func (m *MockOTPChallengeRepo) IncrementAttempts(ctx context.Context, challengeID uuid.UUID) error {
	args := m.Called(ctx, challengeID)
	return args.Error(0)
}

func (m *MockOTPChallengeRepo) Delete(ctx context.Context, challengeID uuid.UUID) error {
	args := m.Called(ctx, challengeID)
	return args.Error(0)
}

func (m *MockOTPChallengeRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
