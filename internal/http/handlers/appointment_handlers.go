package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/services"
)

// AppointmentHandlers handles appointment CRUD requests
type AppointmentHandlers struct {
	svc *services.ResourceServiceImpl[domain.Appointment]
}

// NewAppointmentHandlers creates new appointment handlers
func NewAppointmentHandlers(svc *services.ResourceServiceImpl[domain.Appointment]) *AppointmentHandlers {
	return &AppointmentHandlers{svc: svc}
}

// StoreAppointmentRequest represents appointment creation input
type StoreAppointmentRequest struct {
	PatientName    string `json:"patient_name" binding:"required,max=255"`
	PatientEmail   string `json:"patient_email" binding:"required,email,max=255"`
	PatientContact string `json:"patient_contact" binding:"required,max=255"`
	Purpose        string `json:"purpose" binding:"required,max=1000"`
	Remarks        string `json:"remarks" binding:"omitempty,max=1000"`
	ScheduleDate   string `json:"schedule_date" binding:"required,datetime=2006-01-02"`
	ScheduleTime   string `json:"schedule_time" binding:"required,datetime=15:04"`
	Status         string `json:"status" binding:"required,oneof=pending active past_due cancelled"`
}

// UpdateAppointmentRequest represents a partial appointment update
type UpdateAppointmentRequest struct {
	PatientName    *string `json:"patient_name" binding:"omitempty,max=255"`
	PatientEmail   *string `json:"patient_email" binding:"omitempty,email,max=255"`
	PatientContact *string `json:"patient_contact" binding:"omitempty,max=255"`
	Purpose        *string `json:"purpose" binding:"omitempty,max=1000"`
	Remarks        *string `json:"remarks" binding:"omitempty,max=1000"`
	ScheduleDate   *string `json:"schedule_date" binding:"omitempty,datetime=2006-01-02"`
	ScheduleTime   *string `json:"schedule_time" binding:"omitempty,datetime=15:04"`
	Status         *string `json:"status" binding:"omitempty,oneof=pending active past_due cancelled"`
}

func (r *UpdateAppointmentRequest) changes() map[string]any {
	changes := map[string]any{}
	if r.PatientName != nil {
		changes["patient_name"] = *r.PatientName
	}
	if r.PatientEmail != nil {
		changes["patient_email"] = *r.PatientEmail
	}
	if r.PatientContact != nil {
		changes["patient_contact"] = *r.PatientContact
	}
	if r.Purpose != nil {
		changes["purpose"] = *r.Purpose
	}
	if r.Remarks != nil {
		changes["remarks"] = *r.Remarks
	}
	if r.ScheduleDate != nil {
		changes["schedule_date"] = *r.ScheduleDate
	}
	if r.ScheduleTime != nil {
		changes["schedule_time"] = *r.ScheduleTime
	}
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	return changes
}

// List returns all appointments, newest first
func (h *AppointmentHandlers) List(c *gin.Context) {
	appointments, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// Get returns one appointment
func (h *AppointmentHandlers) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	appointment, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// Create books a new appointment
func (h *AppointmentHandlers) Create(c *gin.Context) {
	var req StoreAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	appointment := &domain.Appointment{
		PatientName:    req.PatientName,
		PatientEmail:   req.PatientEmail,
		PatientContact: req.PatientContact,
		Purpose:        req.Purpose,
		Remarks:        req.Remarks,
		ScheduleDate:   req.ScheduleDate,
		ScheduleTime:   req.ScheduleTime,
		Status:         req.Status,
	}

	if err := h.svc.Create(c.Request.Context(), appointment); err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// Update modifies an appointment
func (h *AppointmentHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.svc.Update(c.Request.Context(), id, req.changes())
	if err != nil {
		respondResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// Delete removes an appointment
func (h *AppointmentHandlers) Delete(c *gin.Context) {
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
