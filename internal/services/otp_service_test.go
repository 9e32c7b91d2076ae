package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/mocks"
)

func TestOTPServiceImpl_Create(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		purpose       domain.OTPPurpose
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockOTPRepository)
		expectedError error
		validateOTP   func(t *testing.T, otp *domain.UserOTP)
	}{
		{
			name:    "successful otp creation",
			email:   "patient@dentalease.com",
			purpose: domain.OTPPurposeSignup,
			setupMocks: func(userRepo *mocks.MockUserRepository, otpRepo *mocks.MockOTPRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{ID: 3, Email: email, Role: domain.RolePatient}, nil
				}
			},
			validateOTP: func(t *testing.T, otp *domain.UserOTP) {
				if otp.UserID != 3 {
					t.Errorf("expected user id 3, got %d", otp.UserID)
				}
				if otp.Email != "patient@dentalease.com" {
					t.Errorf("expected email patient@dentalease.com, got %s", otp.Email)
				}
				if otp.Purpose != domain.OTPPurposeSignup {
					t.Errorf("expected purpose signup, got %s", otp.Purpose)
				}
				if otp.IsUsed {
					t.Error("expected a fresh code to be unused")
				}
				if !otp.ExpiresAt.After(time.Now()) {
					t.Error("expected the expiry to be in the future")
				}
				code, err := strconv.Atoi(otp.Code)
				if err != nil {
					t.Fatalf("code %q is not numeric", otp.Code)
				}
				if code < 100000 || code > 999999 {
					t.Errorf("code %d outside [100000, 999999]", code)
				}
			},
		},
		{
			name:    "unknown email",
			email:   "nobody@dentalease.com",
			purpose: domain.OTPPurposeResetPassword,
			setupMocks: func(userRepo *mocks.MockUserRepository, otpRepo *mocks.MockOTPRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
				otpRepo.CreateFunc = func(ctx context.Context, otp *domain.UserOTP) error {
					t.Error("no otp row should be persisted for an unknown email")
					return nil
				}
			},
			expectedError: domain.ErrInvalidEmail,
		},
		{
			name:    "store failure propagates",
			email:   "patient@dentalease.com",
			purpose: domain.OTPPurposeSignup,
			setupMocks: func(userRepo *mocks.MockUserRepository, otpRepo *mocks.MockOTPRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{ID: 3, Email: email, Role: domain.RolePatient}, nil
				}
				otpRepo.CreateFunc = func(ctx context.Context, otp *domain.UserOTP) error {
					return errors.New("database error")
				}
			},
			expectedError: errors.New("failed to persist otp: database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			otpRepo := mocks.NewMockOTPRepository()
			tt.setupMocks(userRepo, otpRepo)

			svc := NewOTPService(userRepo, otpRepo, 10*time.Minute)
			otp, err := svc.Create(context.Background(), tt.email, tt.purpose)

			if tt.expectedError != nil {
				if err == nil || err.Error() != tt.expectedError.Error() {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if otp != nil {
					t.Error("expected nil otp on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validateOTP(t, otp)
		})
	}
}

func TestOTPServiceImpl_CreateProducesIndependentCodes(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: 3, Email: email, Role: domain.RolePatient}, nil
	}

	var created []*domain.UserOTP
	otpRepo := mocks.NewMockOTPRepository()
	otpRepo.CreateFunc = func(ctx context.Context, otp *domain.UserOTP) error {
		otp.ID = uint(len(created) + 1)
		created = append(created, otp)
		return nil
	}

	svc := NewOTPService(userRepo, otpRepo, 10*time.Minute)
	ctx := context.Background()

	first, err := svc.Create(ctx, "patient@dentalease.com", domain.OTPPurposeSignup)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := svc.Create(ctx, "patient@dentalease.com", domain.OTPPurposeSignup)
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	if len(created) != 2 {
		t.Fatalf("expected two persisted rows, got %d", len(created))
	}
	if first.ID == second.ID {
		t.Error("expected two independent rows, not an overwrite")
	}
}

func TestOTPServiceImpl_Verify(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockOTPRepository)
		expectedOK    bool
		expectedError error
	}{
		{
			name: "matching live code verifies",
			setupMocks: func(otpRepo *mocks.MockOTPRepository) {
				otpRepo.ConsumeFunc = func(ctx context.Context, email, code string) (bool, error) {
					return email == "patient@dentalease.com" && code == "123456", nil
				}
			},
			expectedOK: true,
		},
		{
			name: "no matching code",
			setupMocks: func(otpRepo *mocks.MockOTPRepository) {
				otpRepo.ConsumeFunc = func(ctx context.Context, email, code string) (bool, error) {
					return false, nil
				}
			},
			expectedError: domain.ErrInvalidOTP,
		},
		{
			name: "store failure propagates",
			setupMocks: func(otpRepo *mocks.MockOTPRepository) {
				otpRepo.ConsumeFunc = func(ctx context.Context, email, code string) (bool, error) {
					return false, errors.New("database error")
				}
			},
			expectedError: errors.New("failed to verify otp: database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otpRepo := mocks.NewMockOTPRepository()
			tt.setupMocks(otpRepo)

			svc := NewOTPService(mocks.NewMockUserRepository(), otpRepo, 10*time.Minute)
			ok, err := svc.Verify(context.Background(), "patient@dentalease.com", "123456")

			if tt.expectedError != nil {
				if err == nil || err.Error() != tt.expectedError.Error() {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if ok {
					t.Error("expected verification to fail")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.expectedOK {
				t.Errorf("expected ok=%v, got %v", tt.expectedOK, ok)
			}
		})
	}
}

func TestGenerateCode_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateCode()
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d outside [100000, 999999]", n)
		}
	}
}
