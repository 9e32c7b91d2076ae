package mocks

import (
	"context"
	"time"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// MockSessionRepository implements domain.SessionRepository for testing
type MockSessionRepository struct {
	CreateFunc   func(ctx context.Context, session *domain.Session) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Session, error)
	EndFunc      func(ctx context.Context, id uint) (*domain.Session, error)
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	session.ID = 1
	return nil
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id uint) (*domain.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *MockSessionRepository) End(ctx context.Context, id uint) (*domain.Session, error) {
	if m.EndFunc != nil {
		return m.EndFunc(ctx, id)
	}
	now := time.Now()
	return &domain.Session{ID: id, SigninAt: now.Add(-time.Minute), SignoutAt: &now}, nil
}

var _ domain.SessionRepository = (*MockSessionRepository)(nil)
