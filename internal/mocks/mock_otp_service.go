package mocks

import (
	"context"
	"time"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	CreateFunc func(ctx context.Context, email string, purpose domain.OTPPurpose) (*domain.UserOTP, error)
	VerifyFunc func(ctx context.Context, email, code string) (bool, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

func (m *MockOTPService) Create(ctx context.Context, email string, purpose domain.OTPPurpose) (*domain.UserOTP, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, email, purpose)
	}
	return &domain.UserOTP{
		ID:        1,
		UserID:    1,
		Email:     email,
		Code:      "123456",
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}, nil
}

func (m *MockOTPService) Verify(ctx context.Context, email, code string) (bool, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code)
	}
	return false, domain.ErrInvalidOTP
}

var _ domain.OTPService = (*MockOTPService)(nil)
