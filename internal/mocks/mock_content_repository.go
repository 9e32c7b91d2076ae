package mocks

import (
	"context"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// MockContentRepository implements domain.ContentRepository for testing
type MockContentRepository struct {
	ListFunc           func(ctx context.Context) ([]domain.ContentBlock, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.ContentBlock, error)
	CreateFunc         func(ctx context.Context, block *domain.ContentBlock) error
	UpdateFunc         func(ctx context.Context, id uint, changes map[string]any) (*domain.ContentBlock, error)
	DeleteFunc         func(ctx context.Context, id uint) error
	FindByCategoryFunc func(ctx context.Context, category string) (*domain.ContentBlock, error)
	ListByCategoryFunc func(ctx context.Context, category string) ([]domain.ContentBlock, error)
	ListActiveFunc     func(ctx context.Context) ([]domain.ContentBlock, error)
}

// NewMockContentRepository creates a new MockContentRepository with default behaviors
func NewMockContentRepository() *MockContentRepository {
	return &MockContentRepository{}
}

func (m *MockContentRepository) List(ctx context.Context) ([]domain.ContentBlock, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockContentRepository) FindByID(ctx context.Context, id uint) (*domain.ContentBlock, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockContentRepository) Create(ctx context.Context, block *domain.ContentBlock) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, block)
	}
	block.ID = 1
	return nil
}

func (m *MockContentRepository) Update(ctx context.Context, id uint, changes map[string]any) (*domain.ContentBlock, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, changes)
	}
	return nil, domain.ErrNotFound
}

func (m *MockContentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockContentRepository) FindByCategory(ctx context.Context, category string) (*domain.ContentBlock, error) {
	if m.FindByCategoryFunc != nil {
		return m.FindByCategoryFunc(ctx, category)
	}
	// Default behavior: category free
	return nil, domain.ErrNotFound
}

func (m *MockContentRepository) ListByCategory(ctx context.Context, category string) ([]domain.ContentBlock, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockContentRepository) ListActive(ctx context.Context) ([]domain.ContentBlock, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

var _ domain.ContentRepository = (*MockContentRepository)(nil)
