package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using GORM. The
// session table is an append-only ledger: sign-out updates the row, nothing
// deletes it.
type SessionRepositoryImpl struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) domain.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// FindByID implements domain.SessionRepository
func (r *SessionRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Session, error) {
	var session domain.Session
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// End implements domain.SessionRepository. Ending an already-ended session
// overwrites the sign-out timestamp; the ledger keeps no guard against
// re-closing.
func (r *SessionRepositoryImpl) End(ctx context.Context, id uint) (*domain.Session, error) {
	session, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := r.db.WithContext(ctx).Model(session).Update("signout_at", now).Error; err != nil {
		return nil, err
	}

	session.SignoutAt = &now
	return session, nil
}
