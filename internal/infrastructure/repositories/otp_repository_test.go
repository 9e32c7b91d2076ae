package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

func TestOTPRepositoryImpl_Consume(t *testing.T) {
	tests := []struct {
		name     string
		otp      domain.UserOTP
		email    string
		code     string
		consumed bool
	}{
		{
			name: "valid code consumes",
			otp: domain.UserOTP{
				UserID:    1,
				Email:     "patient@dentalease.com",
				Code:      "123456",
				Purpose:   domain.OTPPurposeSignup,
				ExpiresAt: time.Now().Add(10 * time.Minute),
			},
			email:    "patient@dentalease.com",
			code:     "123456",
			consumed: true,
		},
		{
			name: "wrong code does not consume",
			otp: domain.UserOTP{
				UserID:    1,
				Email:     "patient@dentalease.com",
				Code:      "123456",
				Purpose:   domain.OTPPurposeSignup,
				ExpiresAt: time.Now().Add(10 * time.Minute),
			},
			email:    "patient@dentalease.com",
			code:     "654321",
			consumed: false,
		},
		{
			name: "expired code does not consume even when correct",
			otp: domain.UserOTP{
				UserID:    1,
				Email:     "patient@dentalease.com",
				Code:      "123456",
				Purpose:   domain.OTPPurposeResetPassword,
				ExpiresAt: time.Now().Add(-time.Minute),
			},
			email:    "patient@dentalease.com",
			code:     "123456",
			consumed: false,
		},
		{
			name: "already used code does not consume",
			otp: domain.UserOTP{
				UserID:    1,
				Email:     "patient@dentalease.com",
				Code:      "123456",
				Purpose:   domain.OTPPurposeSignup,
				IsUsed:    true,
				ExpiresAt: time.Now().Add(10 * time.Minute),
			},
			email:    "patient@dentalease.com",
			code:     "123456",
			consumed: false,
		},
		{
			name: "different email does not consume",
			otp: domain.UserOTP{
				UserID:    1,
				Email:     "patient@dentalease.com",
				Code:      "123456",
				Purpose:   domain.OTPPurposeSignup,
				ExpiresAt: time.Now().Add(10 * time.Minute),
			},
			email:    "staff@dentalease.com",
			code:     "123456",
			consumed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := NewOTPRepository(db)
			ctx := context.Background()

			otp := tt.otp
			if err := repo.Create(ctx, &otp); err != nil {
				t.Fatalf("create failed: %v", err)
			}

			consumed, err := repo.Consume(ctx, tt.email, tt.code)
			if err != nil {
				t.Fatalf("consume failed: %v", err)
			}
			if consumed != tt.consumed {
				t.Errorf("expected consumed=%v, got %v", tt.consumed, consumed)
			}
		})
	}
}

func TestOTPRepositoryImpl_ConsumeIsSingleUse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOTPRepository(db)
	ctx := context.Background()

	otp := &domain.UserOTP{
		UserID:    1,
		Email:     "patient@dentalease.com",
		Code:      "123456",
		Purpose:   domain.OTPPurposeSignup,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	if err := repo.Create(ctx, otp); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := repo.Consume(ctx, otp.Email, otp.Code)
	if err != nil {
		t.Fatalf("first consume failed: %v", err)
	}
	if !first {
		t.Fatal("expected first consume to succeed")
	}

	second, err := repo.Consume(ctx, otp.Email, otp.Code)
	if err != nil {
		t.Fatalf("second consume failed: %v", err)
	}
	if second {
		t.Error("expected second consume of the same code to fail")
	}
}

func TestOTPRepositoryImpl_IndependentRowsPerRequest(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOTPRepository(db)
	ctx := context.Background()

	first := &domain.UserOTP{
		UserID: 1, Email: "patient@dentalease.com", Code: "111111",
		Purpose: domain.OTPPurposeSignup, ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	second := &domain.UserOTP{
		UserID: 1, Email: "patient@dentalease.com", Code: "222222",
		Purpose: domain.OTPPurposeSignup, ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("expected two independent rows")
	}

	// Consuming one code leaves the other live.
	if ok, _ := repo.Consume(ctx, first.Email, first.Code); !ok {
		t.Error("expected first code to consume")
	}
	if ok, _ := repo.Consume(ctx, second.Email, second.Code); !ok {
		t.Error("expected second code to remain consumable")
	}
}
