package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// OTPRepositoryImpl implements domain.OTPRepository using GORM. Codes are
// never deleted; verification flips is_used in place.
type OTPRepositoryImpl struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *gorm.DB) domain.OTPRepository {
	return &OTPRepositoryImpl{db: db}
}

// Create implements domain.OTPRepository
func (r *OTPRepositoryImpl) Create(ctx context.Context, otp *domain.UserOTP) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

// Consume implements domain.OTPRepository. The match and the used-flag flip
// happen in one conditional UPDATE, so of two concurrent verifications for
// the same code at most one observes rows-affected > 0.
func (r *OTPRepositoryImpl) Consume(ctx context.Context, email, code string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.UserOTP{}).
		Where("email = ? AND otp = ? AND is_used = ? AND expires_at > ?", email, code, false, time.Now()).
		Update("is_used", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
