package services

import (
	"context"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// ResourceServiceImpl is the thin service layer shared by every CRUD
// resource. Resources differ only in field lists and per-resource rules;
// anything with extra rules (content) wraps or replaces this.
type ResourceServiceImpl[T any] struct {
	repo domain.CrudRepository[T]
}

// NewResourceService creates a resource service over a generic repository.
func NewResourceService[T any](repo domain.CrudRepository[T]) *ResourceServiceImpl[T] {
	return &ResourceServiceImpl[T]{repo: repo}
}

func (s *ResourceServiceImpl[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *ResourceServiceImpl[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ResourceServiceImpl[T]) Create(ctx context.Context, entity *T) error {
	return s.repo.Create(ctx, entity)
}

func (s *ResourceServiceImpl[T]) Update(ctx context.Context, id uint, changes map[string]any) (*T, error) {
	return s.repo.Update(ctx, id, changes)
}

func (s *ResourceServiceImpl[T]) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
