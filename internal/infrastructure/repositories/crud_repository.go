package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// GormCrudRepository implements domain.CrudRepository for any persisted
// entity type. Every CRUD resource (appointments, patients, services,
// contact-us, content) shares this store contract.
type GormCrudRepository[T any] struct {
	db *gorm.DB
}

// NewCrudRepository creates a generic repository for T.
func NewCrudRepository[T any](db *gorm.DB) *GormCrudRepository[T] {
	return &GormCrudRepository[T]{db: db}
}

// List implements domain.CrudRepository. Rows come back newest first.
func (r *GormCrudRepository[T]) List(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Order("id desc").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindByID implements domain.CrudRepository
func (r *GormCrudRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Create implements domain.CrudRepository
func (r *GormCrudRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update implements domain.CrudRepository. Only the given fields change;
// the updated row is re-read and returned.
func (r *GormCrudRepository[T]) Update(ctx context.Context, id uint, changes map[string]any) (*T, error) {
	entity, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(entity).Updates(changes).Error; err != nil {
		return nil, translateError(err)
	}

	return r.FindByID(ctx, id)
}

// Delete implements domain.CrudRepository
func (r *GormCrudRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// translateError maps store-level constraint violations onto domain errors.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

var _ domain.CrudRepository[domain.Appointment] = (*GormCrudRepository[domain.Appointment])(nil)
