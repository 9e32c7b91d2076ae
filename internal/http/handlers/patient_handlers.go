package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/services"
)

// PatientHandlers handles patient record CRUD requests
type PatientHandlers struct {
	svc *services.ResourceServiceImpl[domain.Patient]
}

// NewPatientHandlers creates new patient handlers
func NewPatientHandlers(svc *services.ResourceServiceImpl[domain.Patient]) *PatientHandlers {
	return &PatientHandlers{svc: svc}
}

// StorePatientRequest represents patient creation input
type StorePatientRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Contact     string `json:"contact" binding:"required,max=255"`
	Address     string `json:"address" binding:"required"`
	Gender      string `json:"gender" binding:"required,oneof=male female other"`
	Birthdate   string `json:"birthdate" binding:"required,datetime=2006-01-02"`
	Citizenship string `json:"citizenship" binding:"required,max=255"`
	Status      string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdatePatientRequest represents a partial patient update
type UpdatePatientRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Email       *string `json:"email" binding:"omitempty,email,max=255"`
	Contact     *string `json:"contact" binding:"omitempty,max=255"`
	Address     *string `json:"address"`
	Gender      *string `json:"gender" binding:"omitempty,oneof=male female other"`
	Birthdate   *string `json:"birthdate" binding:"omitempty,datetime=2006-01-02"`
	Citizenship *string `json:"citizenship" binding:"omitempty,max=255"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r *UpdatePatientRequest) changes() map[string]any {
	changes := map[string]any{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	if r.Contact != nil {
		changes["contact"] = *r.Contact
	}
	if r.Address != nil {
		changes["address"] = *r.Address
	}
	if r.Gender != nil {
		changes["gender"] = *r.Gender
	}
	if r.Birthdate != nil {
		changes["birthdate"] = *r.Birthdate
	}
	if r.Citizenship != nil {
		changes["citizenship"] = *r.Citizenship
	}
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	return changes
}

// List returns all patients, newest first
func (h *PatientHandlers) List(c *gin.Context) {
	patients, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// Get returns one patient
func (h *PatientHandlers) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	patient, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// Create registers a new patient record
func (h *PatientHandlers) Create(c *gin.Context) {
	var req StorePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if req.Status == "" {
		req.Status = "active"
	}

	patient := &domain.Patient{
		Name:        req.Name,
		Email:       req.Email,
		Contact:     req.Contact,
		Address:     req.Address,
		Gender:      req.Gender,
		Birthdate:   req.Birthdate,
		Citizenship: req.Citizenship,
		Status:      req.Status,
	}

	if err := h.svc.Create(c.Request.Context(), patient); err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

// Update modifies a patient record
func (h *PatientHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.svc.Update(c.Request.Context(), id, req.changes())
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// Delete removes a patient record
func (h *PatientHandlers) Delete(c *gin.Context) {
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
