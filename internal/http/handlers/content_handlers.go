package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/services"
)

// ContentHandlers handles CMS content blocks
type ContentHandlers struct {
	svc *services.ContentServiceImpl
}

// NewContentHandlers creates new content handlers
func NewContentHandlers(svc *services.ContentServiceImpl) *ContentHandlers {
	return &ContentHandlers{svc: svc}
}

// StoreContentRequest represents content block creation input
type StoreContentRequest struct {
	Category string          `json:"category" binding:"required"`
	Title    string          `json:"title" binding:"required,max=255"`
	Content  string          `json:"content" binding:"required"`
	Metadata json.RawMessage `json:"metadata"`
	IsActive *bool           `json:"is_active"`
}

// UpdateContentRequest represents a partial content block update
type UpdateContentRequest struct {
	Category *string         `json:"category"`
	Title    *string         `json:"title" binding:"omitempty,max=255"`
	Content  *string         `json:"content"`
	Metadata json.RawMessage `json:"metadata"`
	IsActive *bool           `json:"is_active"`
}

func (r *UpdateContentRequest) changes() map[string]any {
	changes := map[string]any{}
	if r.Category != nil {
		changes["category"] = *r.Category
	}
	if r.Title != nil {
		changes["title"] = *r.Title
	}
	if r.Content != nil {
		changes["content"] = *r.Content
	}
	if r.Metadata != nil {
		changes["metadata"] = datatypes.JSON(r.Metadata)
	}
	if r.IsActive != nil {
		changes["is_active"] = *r.IsActive
	}
	return changes
}

// List returns every content block
func (h *ContentHandlers) List(c *gin.Context) {
	blocks, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// ListActive returns the blocks the public site renders
func (h *ContentHandlers) ListActive(c *gin.Context) {
	blocks, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// Get returns one content block by id
func (h *ContentHandlers) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	block, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// GetByCategory returns the single block of a category
func (h *ContentHandlers) GetByCategory(c *gin.Context) {
	category := c.Param("category")
	if !domain.ValidContentCategory(category) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown content category"})
		return
	}

	block, err := h.svc.GetByCategory(c.Request.Context(), category)
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// ListByCategory returns every block of a category. Only clinic
// announcements can have more than one.
func (h *ContentHandlers) ListByCategory(c *gin.Context) {
	category := c.Param("category")
	if !domain.ValidContentCategory(category) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown content category"})
		return
	}

	blocks, err := h.svc.ListByCategory(c.Request.Context(), category)
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// Create adds a content block
func (h *ContentHandlers) Create(c *gin.Context) {
	var req StoreContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if !domain.ValidContentCategory(req.Category) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown content category"})
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	block := &domain.ContentBlock{
		Category: req.Category,
		Title:    req.Title,
		Content:  req.Content,
		Metadata: datatypes.JSON(req.Metadata),
		IsActive: active,
	}

	if err := h.svc.Create(c.Request.Context(), block); err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// Update modifies a content block
func (h *ContentHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if req.Category != nil && !domain.ValidContentCategory(*req.Category) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown content category"})
		return
	}

	block, err := h.svc.Update(c.Request.Context(), id, req.changes())
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// Delete removes a content block
func (h *ContentHandlers) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
