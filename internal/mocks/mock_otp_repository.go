package mocks

import (
	"context"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// MockOTPRepository implements domain.OTPRepository for testing
type MockOTPRepository struct {
	CreateFunc  func(ctx context.Context, otp *domain.UserOTP) error
	ConsumeFunc func(ctx context.Context, email, code string) (bool, error)
}

// NewMockOTPRepository creates a new MockOTPRepository with default behaviors
func NewMockOTPRepository() *MockOTPRepository {
	return &MockOTPRepository{}
}

func (m *MockOTPRepository) Create(ctx context.Context, otp *domain.UserOTP) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, otp)
	}
	otp.ID = 1
	return nil
}

func (m *MockOTPRepository) Consume(ctx context.Context, email, code string) (bool, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, email, code)
	}
	// Default behavior: no matching live code
	return false, nil
}

var _ domain.OTPRepository = (*MockOTPRepository)(nil)
