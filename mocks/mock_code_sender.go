package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCodeSender is a mock implementation of port.CodeSender.
type MockCodeSender struct {
	mock.Mock
}

func (m *MockCodeSender) SendCode(ctx context.Context, phone, email, name, code string) error {
	args := m.Called(ctx, phone, email, name, code)
	return args.Error(0)
}
