package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/mocks"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/services"
)

func newContentHandlers(repo *mocks.MockContentRepository) *ContentHandlers {
	return NewContentHandlers(services.NewContentService(repo))
}

func TestContentHandlers_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMock      func(*mocks.MockContentRepository)
		expectedStatus int
	}{
		{
			name: "first block in a category",
			body: StoreContentRequest{
				Category: domain.ContentClinicInformation,
				Title:    "About the clinic",
				Content:  "We are open weekdays.",
			},
			setupMock:      func(m *mocks.MockContentRepository) {},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "second block in a single-instance category",
			body: StoreContentRequest{
				Category: domain.ContentClinicInformation,
				Title:    "About the clinic, again",
				Content:  "Duplicate.",
			},
			setupMock: func(m *mocks.MockContentRepository) {
				m.FindByCategoryFunc = func(ctx context.Context, category string) (*domain.ContentBlock, error) {
					return &domain.ContentBlock{ID: 1, Category: category}, nil
				}
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "second announcement is allowed",
			body: StoreContentRequest{
				Category: domain.ContentClinicAnnouncements,
				Title:    "Holiday hours",
				Content:  "Closed on the 25th.",
			},
			setupMock: func(m *mocks.MockContentRepository) {
				m.FindByCategoryFunc = func(ctx context.Context, category string) (*domain.ContentBlock, error) {
					return &domain.ContentBlock{ID: 1, Category: category}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown category",
			body: StoreContentRequest{
				Category: "press_releases",
				Title:    "T",
				Content:  "C",
			},
			setupMock:      func(m *mocks.MockContentRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "missing title",
			body:           gin.H{"category": domain.ContentOurTeam, "content": "C"},
			setupMock:      func(m *mocks.MockContentRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockContentRepository()
			tt.setupMock(repo)
			h := newContentHandlers(repo)

			c, w := newAuthTestContext(t, http.MethodPost, "/v1/content", tt.body)
			h.Create(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestContentHandlers_Update_CategoryMove(t *testing.T) {
	repo := mocks.NewMockContentRepository()
	repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.ContentBlock, error) {
		return &domain.ContentBlock{ID: id, Category: domain.ContentOurTeam}, nil
	}
	repo.FindByCategoryFunc = func(ctx context.Context, category string) (*domain.ContentBlock, error) {
		if category == domain.ContentOwnerInformation {
			return &domain.ContentBlock{ID: 9, Category: category}, nil
		}
		return nil, domain.ErrNotFound
	}
	h := newContentHandlers(repo)

	// Moving into an occupied single-instance category is rejected.
	target := domain.ContentOwnerInformation
	c, w := newAuthTestContext(t, http.MethodPut, "/v1/content/3", UpdateContentRequest{Category: &target})
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	h.Update(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestContentHandlers_GetByCategory(t *testing.T) {
	repo := mocks.NewMockContentRepository()
	repo.FindByCategoryFunc = func(ctx context.Context, category string) (*domain.ContentBlock, error) {
		if category == domain.ContentClinicInformation {
			return &domain.ContentBlock{ID: 4, Category: category, Title: "About"}, nil
		}
		return nil, domain.ErrNotFound
	}
	h := newContentHandlers(repo)

	tests := []struct {
		name           string
		category       string
		expectedStatus int
	}{
		{"existing category", domain.ContentClinicInformation, http.StatusOK},
		{"empty category", domain.ContentOurTeam, http.StatusNotFound},
		{"unknown category", "press_releases", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newAuthTestContext(t, http.MethodGet, "/v1/content/category/"+tt.category, nil)
			c.Params = gin.Params{{Key: "category", Value: tt.category}}
			h.GetByCategory(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestContentHandlers_ListActive(t *testing.T) {
	repo := mocks.NewMockContentRepository()
	repo.ListActiveFunc = func(ctx context.Context) ([]domain.ContentBlock, error) {
		return []domain.ContentBlock{
			{ID: 2, Category: domain.ContentClinicAnnouncements, IsActive: true},
			{ID: 1, Category: domain.ContentClinicInformation, IsActive: true},
		}, nil
	}
	h := newContentHandlers(repo)

	c, w := newAuthTestContext(t, http.MethodGet, "/v1/content/active", nil)
	h.ListActive(c)

	require.Equal(t, http.StatusOK, w.Code)
	var blocks []domain.ContentBlock
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &blocks))
	assert.Len(t, blocks, 2)
}
