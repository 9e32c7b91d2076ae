package mocks

import (
	"context"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	SignInFunc  func(ctx context.Context, email, password string, client domain.ClientContext) (*domain.AuthResult, error)
	SignOutFunc func(ctx context.Context, auth domain.AuthContext, sessionID uint) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string, client domain.ClientContext) (*domain.AuthResult, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password, client)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) SignOut(ctx context.Context, auth domain.AuthContext, sessionID uint) error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx, auth, sessionID)
	}
	return nil
}

var _ domain.AuthService = (*MockAuthService)(nil)
