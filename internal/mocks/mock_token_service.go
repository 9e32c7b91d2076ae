package mocks

import (
	"context"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	MintFunc     func(ctx context.Context, user *domain.User, name string) (string, string, error)
	ValidateFunc func(ctx context.Context, raw string) (*domain.AccessClaims, error)
	RevokeFunc   func(ctx context.Context, tokenID string) error

	Revoked []string
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Mint(ctx context.Context, user *domain.User, name string) (string, string, error) {
	if m.MintFunc != nil {
		return m.MintFunc(ctx, user, name)
	}
	return "mock_token_id", "mock_token_id|mock_secret", nil
}

func (m *MockTokenService) Validate(ctx context.Context, raw string) (*domain.AccessClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, raw)
	}
	return nil, domain.ErrTokenInvalid
}

func (m *MockTokenService) Revoke(ctx context.Context, tokenID string) error {
	m.Revoked = append(m.Revoked, tokenID)
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, tokenID)
	}
	return nil
}

var _ domain.TokenService = (*MockTokenService)(nil)
