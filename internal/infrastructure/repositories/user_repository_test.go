package repositories

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.UserOTP{},
		&domain.Appointment{},
		&domain.Patient{},
		&domain.ClinicService{},
		&domain.ContactMessage{},
		&domain.ContentBlock{},
	); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func TestUserRepositoryImpl_FindByEmail(t *testing.T) {
	tests := []struct {
		name          string
		setupData     func(db *gorm.DB)
		email         string
		expectedError error
	}{
		{
			name: "successful find by email",
			setupData: func(db *gorm.DB) {
				db.Create(&domain.User{
					Name:         "administrator",
					Email:        "administrator@dentalease.com",
					PasswordHash: "hashed_password",
					Role:         domain.RoleAdministrator,
				})
			},
			email:         "administrator@dentalease.com",
			expectedError: nil,
		},
		{
			name:          "email not found",
			setupData:     func(db *gorm.DB) {},
			email:         "nobody@dentalease.com",
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			tt.setupData(db)
			repo := NewUserRepository(db)

			user, err := repo.FindByEmail(context.Background(), tt.email)

			if err != tt.expectedError {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
			if tt.expectedError == nil {
				if user == nil {
					t.Fatal("expected a user")
				}
				if user.Email != tt.email {
					t.Errorf("expected email %s, got %s", tt.email, user.Email)
				}
				if user.Role != domain.RoleAdministrator {
					t.Errorf("expected role administrator, got %s", user.Role)
				}
			}
		})
	}
}

func TestUserRepositoryImpl_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Name:         "staff",
		Email:        "staff@dentalease.com",
		PasswordHash: "hashed_password",
		Role:         domain.RoleStaff,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected the created user to get an id")
	}

	found, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find by id failed: %v", err)
	}
	if found.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, found.Email)
	}

	if _, err := repo.FindByID(ctx, 999); err != domain.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
