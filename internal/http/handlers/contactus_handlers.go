package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/services"
)

// ContactUsHandlers handles contact-us inquiries
type ContactUsHandlers struct {
	svc *services.ResourceServiceImpl[domain.ContactMessage]
}

// NewContactUsHandlers creates new contact-us handlers
func NewContactUsHandlers(svc *services.ResourceServiceImpl[domain.ContactMessage]) *ContactUsHandlers {
	return &ContactUsHandlers{svc: svc}
}

// StoreContactRequest represents an inquiry submission
type StoreContactRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Phone   string `json:"phone" binding:"omitempty,max=255"`
	Subject string `json:"subject" binding:"required,max=255"`
	Message string `json:"message" binding:"required,max=1000"`
}

// UpdateContactRequest represents a partial inquiry update, typically the
// status transition once staff has responded.
type UpdateContactRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Email   *string `json:"email" binding:"omitempty,email,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=255"`
	Subject *string `json:"subject" binding:"omitempty,max=255"`
	Message *string `json:"message" binding:"omitempty,max=1000"`
	Status  *string `json:"status" binding:"omitempty,oneof=pending responded closed"`
}

func (r *UpdateContactRequest) changes() map[string]any {
	changes := map[string]any{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	if r.Phone != nil {
		changes["phone"] = *r.Phone
	}
	if r.Subject != nil {
		changes["subject"] = *r.Subject
	}
	if r.Message != nil {
		changes["message"] = *r.Message
	}
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	return changes
}

// List returns all inquiries, newest first
func (h *ContactUsHandlers) List(c *gin.Context) {
	messages, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Get returns one inquiry
func (h *ContactUsHandlers) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	message, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

// Create submits a new inquiry
func (h *ContactUsHandlers) Create(c *gin.Context) {
	var req StoreContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	message := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  "pending",
	}

	if err := h.svc.Create(c.Request.Context(), message); err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// Update modifies an inquiry
func (h *ContactUsHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	message, err := h.svc.Update(c.Request.Context(), id, req.changes())
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

// Delete removes an inquiry
func (h *ContactUsHandlers) Delete(c *gin.Context) {
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
