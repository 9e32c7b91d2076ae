package services

import (
	"context"
	"testing"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/mocks"
)

func TestContentServiceImpl_Create(t *testing.T) {
	tests := []struct {
		name          string
		block         *domain.ContentBlock
		setupMocks    func(*mocks.MockContentRepository)
		expectedError error
	}{
		{
			name: "free category creates",
			block: &domain.ContentBlock{
				Category: domain.ContentClinicInformation,
				Title:    "About the Clinic",
				Content:  "Open Monday to Saturday.",
			},
			setupMocks: func(repo *mocks.MockContentRepository) {},
		},
		{
			name: "taken single-instance category is rejected",
			block: &domain.ContentBlock{
				Category: domain.ContentOwnerInformation,
				Title:    "Owner",
				Content:  "Dr. Reyes",
			},
			setupMocks: func(repo *mocks.MockContentRepository) {
				repo.FindByCategoryFunc = func(ctx context.Context, category string) (*domain.ContentBlock, error) {
					return &domain.ContentBlock{ID: 1, Category: category}, nil
				}
				repo.CreateFunc = func(ctx context.Context, block *domain.ContentBlock) error {
					t.Error("create should not reach the store for a taken category")
					return nil
				}
			},
			expectedError: domain.ErrCategoryTaken,
		},
		{
			name: "announcements allow multiple rows",
			block: &domain.ContentBlock{
				Category: domain.ContentClinicAnnouncements,
				Title:    "Holiday Hours",
				Content:  "Closed on Dec 25.",
			},
			setupMocks: func(repo *mocks.MockContentRepository) {
				repo.FindByCategoryFunc = func(ctx context.Context, category string) (*domain.ContentBlock, error) {
					t.Error("announcements should skip the uniqueness check")
					return nil, domain.ErrNotFound
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockContentRepository()
			tt.setupMocks(repo)

			svc := NewContentService(repo)
			err := svc.Create(context.Background(), tt.block)

			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestContentServiceImpl_Update(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		changes       map[string]any
		setupMocks    func(*mocks.MockContentRepository)
		expectedError error
	}{
		{
			name:    "update without category change skips the check",
			id:      1,
			changes: map[string]any{"title": "Updated"},
			setupMocks: func(repo *mocks.MockContentRepository) {
				repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.ContentBlock, error) {
					return &domain.ContentBlock{ID: id, Category: domain.ContentClinicInformation}, nil
				}
				repo.FindByCategoryFunc = func(ctx context.Context, category string) (*domain.ContentBlock, error) {
					t.Error("no category lookup expected when category is unchanged")
					return nil, domain.ErrNotFound
				}
				repo.UpdateFunc = func(ctx context.Context, id uint, changes map[string]any) (*domain.ContentBlock, error) {
					return &domain.ContentBlock{ID: id, Category: domain.ContentClinicInformation, Title: "Updated"}, nil
				}
			},
		},
		{
			name:    "moving into a taken category is rejected",
			id:      2,
			changes: map[string]any{"category": domain.ContentOurTeam},
			setupMocks: func(repo *mocks.MockContentRepository) {
				repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.ContentBlock, error) {
					return &domain.ContentBlock{ID: id, Category: domain.ContentLatestDevelopments}, nil
				}
				repo.FindByCategoryFunc = func(ctx context.Context, category string) (*domain.ContentBlock, error) {
					return &domain.ContentBlock{ID: 9, Category: category}, nil
				}
			},
			expectedError: domain.ErrCategoryTaken,
		},
		{
			name:    "unknown id propagates not found",
			id:      99,
			changes: map[string]any{"title": "Updated"},
			setupMocks: func(repo *mocks.MockContentRepository) {
				repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.ContentBlock, error) {
					return nil, domain.ErrNotFound
				}
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockContentRepository()
			tt.setupMocks(repo)

			svc := NewContentService(repo)
			_, err := svc.Update(context.Background(), tt.id, tt.changes)

			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
