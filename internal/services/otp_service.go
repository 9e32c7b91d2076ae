package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// OTPServiceImpl implements domain.OTPService backed by the relational OTP
// ledger.
type OTPServiceImpl struct {
	userRepo domain.UserRepository
	otpRepo  domain.OTPRepository
	ttl      time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(userRepo domain.UserRepository, otpRepo domain.OTPRepository, ttl time.Duration) domain.OTPService {
	return &OTPServiceImpl{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		ttl:      ttl,
	}
}

// Create implements domain.OTPService. Every request persists an
// independent row; earlier codes for the same email stay live until they
// expire or get consumed.
func (s *OTPServiceImpl) Create(ctx context.Context, email string, purpose domain.OTPPurpose) (*domain.UserOTP, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidEmail
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp code: %w", err)
	}

	otp := &domain.UserOTP{
		UserID:    user.ID,
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		IsUsed:    false,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to persist otp: %w", err)
	}

	return otp, nil
}

// Verify implements domain.OTPService. A single ErrInvalidOTP covers wrong,
// expired and already-used codes without distinguishing them to the caller.
// A successful verification consumes the code: a second identical call
// fails.
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string) (bool, error) {
	consumed, err := s.otpRepo.Consume(ctx, email, code)
	if err != nil {
		return false, fmt.Errorf("failed to verify otp: %w", err)
	}
	if !consumed {
		return false, domain.ErrInvalidOTP
	}
	return true, nil
}

// generateCode draws a uniform 6-digit code from [100000, 999999].
func generateCode() (string, error) {
	num, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", num.Int64()+100000), nil
}
