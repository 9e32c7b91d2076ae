package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// ContentRepositoryImpl implements domain.ContentRepository: the generic
// CRUD contract plus the category lookups the clinic site renders from.
type ContentRepositoryImpl struct {
	*GormCrudRepository[domain.ContentBlock]
	db *gorm.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) domain.ContentRepository {
	return &ContentRepositoryImpl{
		GormCrudRepository: NewCrudRepository[domain.ContentBlock](db),
		db:                 db,
	}
}

// FindByCategory returns the single content row for a category, or
// domain.ErrNotFound.
func (r *ContentRepositoryImpl) FindByCategory(ctx context.Context, category string) (*domain.ContentBlock, error) {
	var block domain.ContentBlock
	err := r.db.WithContext(ctx).Where("category = ?", category).First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &block, nil
}

// ListByCategory returns every content row for a category, newest first.
// Only clinic announcements legitimately have more than one.
func (r *ContentRepositoryImpl) ListByCategory(ctx context.Context, category string) ([]domain.ContentBlock, error) {
	var blocks []domain.ContentBlock
	err := r.db.WithContext(ctx).Where("category = ?", category).Order("id desc").Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// ListActive returns the content rows flagged active.
func (r *ContentRepositoryImpl) ListActive(ctx context.Context) ([]domain.ContentBlock, error) {
	var blocks []domain.ContentBlock
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id desc").Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}
