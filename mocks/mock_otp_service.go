package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"awaaz/internal/domain"
)

// MockOTPService is a mock implementation of service.OTPService.
type MockOTPService struct {
	mock.Mock
}

func (m *MockOTPService) SendCode(ctx context.Context, userID uuid.UUID, phone string) (uuid.UUID, error) {
	args := m.Called(ctx, userID, phone)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockOTPService) VerifyCode(ctx context.Context, userID, challengeID uuid.UUID, code string) error {
	args := m.Called(ctx, userID, challengeID, code)
	return args.Error(0)
}

func (m *MockOTPService) ResolveChallenge(ctx context.Context, challengeID uuid.UUID, code string) (*domain.User, error) {
	args := m.Called(ctx, challengeID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
