package services

import (
	"context"
	"errors"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// ContentServiceImpl manages CMS content blocks. Every category except
// clinic announcements allows at most one row; create and update both
// enforce it.
type ContentServiceImpl struct {
	repo domain.ContentRepository
}

// NewContentService creates a new content service
func NewContentService(repo domain.ContentRepository) *ContentServiceImpl {
	return &ContentServiceImpl{repo: repo}
}

func (s *ContentServiceImpl) List(ctx context.Context) ([]domain.ContentBlock, error) {
	return s.repo.List(ctx)
}

func (s *ContentServiceImpl) Get(ctx context.Context, id uint) (*domain.ContentBlock, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContentServiceImpl) GetByCategory(ctx context.Context, category string) (*domain.ContentBlock, error) {
	return s.repo.FindByCategory(ctx, category)
}

func (s *ContentServiceImpl) ListByCategory(ctx context.Context, category string) ([]domain.ContentBlock, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *ContentServiceImpl) ListActive(ctx context.Context) ([]domain.ContentBlock, error) {
	return s.repo.ListActive(ctx)
}

func (s *ContentServiceImpl) Create(ctx context.Context, block *domain.ContentBlock) error {
	if err := s.checkCategoryFree(ctx, block.Category); err != nil {
		return err
	}
	return s.repo.Create(ctx, block)
}

func (s *ContentServiceImpl) Update(ctx context.Context, id uint, changes map[string]any) (*domain.ContentBlock, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if category, ok := changes["category"].(string); ok && category != current.Category {
		if err := s.checkCategoryFree(ctx, category); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, changes)
}

func (s *ContentServiceImpl) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// checkCategoryFree rejects a second row in any single-instance category.
func (s *ContentServiceImpl) checkCategoryFree(ctx context.Context, category string) error {
	if category == domain.ContentClinicAnnouncements {
		return nil
	}

	_, err := s.repo.FindByCategory(ctx, category)
	if err == nil {
		return domain.ErrCategoryTaken
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}
