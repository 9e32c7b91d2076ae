package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/services"
)

// ServiceHandlers handles the dental service catalogue
type ServiceHandlers struct {
	svc *services.ResourceServiceImpl[domain.ClinicService]
}

// NewServiceHandlers creates new catalogue handlers
func NewServiceHandlers(svc *services.ResourceServiceImpl[domain.ClinicService]) *ServiceHandlers {
	return &ServiceHandlers{svc: svc}
}

// StoreServiceRequest represents catalogue entry creation input
type StoreServiceRequest struct {
	Category string  `json:"category" binding:"required,max=255"`
	Name     string  `json:"name" binding:"required,max=255"`
	Price    float64 `json:"price" binding:"required,gte=0"`
	Status   string  `json:"status" binding:"required,oneof=offered not_offered"`
}

// UpdateServiceRequest represents a partial catalogue entry update
type UpdateServiceRequest struct {
	Category *string  `json:"category" binding:"omitempty,max=255"`
	Name     *string  `json:"name" binding:"omitempty,max=255"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`
	Status   *string  `json:"status" binding:"omitempty,oneof=offered not_offered"`
}

func (r *UpdateServiceRequest) changes() map[string]any {
	changes := map[string]any{}
	if r.Category != nil {
		changes["category"] = *r.Category
	}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Price != nil {
		changes["price"] = *r.Price
	}
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	return changes
}

// List returns the full service catalogue
func (h *ServiceHandlers) List(c *gin.Context) {
	catalogue, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogue)
}

// Get returns one catalogue entry
func (h *ServiceHandlers) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entry, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Create adds a catalogue entry
func (h *ServiceHandlers) Create(c *gin.Context) {
	var req StoreServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	entry := &domain.ClinicService{
		Category: req.Category,
		Name:     req.Name,
		Price:    req.Price,
		Status:   req.Status,
	}

	if err := h.svc.Create(c.Request.Context(), entry); err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Update modifies a catalogue entry
func (h *ServiceHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.svc.Update(c.Request.Context(), id, req.changes())
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete removes a catalogue entry
func (h *ServiceHandlers) Delete(c *gin.Context) {
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
