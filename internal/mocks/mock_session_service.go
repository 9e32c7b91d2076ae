package mocks

import (
	"context"
	"time"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// MockSessionService implements domain.SessionService for testing
type MockSessionService struct {
	StartFunc func(ctx context.Context, userID uint, client domain.ClientContext) (*domain.Session, error)
	EndFunc   func(ctx context.Context, sessionID uint) (*domain.Session, error)
}

// NewMockSessionService creates a new MockSessionService with default behaviors
func NewMockSessionService() *MockSessionService {
	return &MockSessionService{}
}

func (m *MockSessionService) Start(ctx context.Context, userID uint, client domain.ClientContext) (*domain.Session, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, userID, client)
	}
	// Default behavior: a fresh open session
	return &domain.Session{
		ID:        1,
		SessionNo: "mocksess01",
		UserID:    userID,
		IPAddress: client.IP,
		Device:    client.Device,
		SigninAt:  time.Now(),
	}, nil
}

func (m *MockSessionService) End(ctx context.Context, sessionID uint) (*domain.Session, error) {
	if m.EndFunc != nil {
		return m.EndFunc(ctx, sessionID)
	}
	now := time.Now()
	return &domain.Session{
		ID:        sessionID,
		SessionNo: "mocksess01",
		SigninAt:  now.Add(-time.Minute),
		SignoutAt: &now,
	}, nil
}

var _ domain.SessionService = (*MockSessionService)(nil)
