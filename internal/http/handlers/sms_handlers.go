package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// SMSHandlers exposes the outbound SMS gateway to staff
type SMSHandlers struct {
	notificationSvc domain.NotificationService
}

// NewSMSHandlers creates new SMS handlers
func NewSMSHandlers(notificationSvc domain.NotificationService) *SMSHandlers {
	return &SMSHandlers{notificationSvc: notificationSvc}
}

// SendSMSRequest represents an outbound SMS dispatch
type SendSMSRequest struct {
	To      string `json:"to" binding:"required,e164"`
	Message string `json:"message" binding:"required,max=1600"`
}

// Send dispatches one SMS through the configured provider
func (h *SMSHandlers) Send(c *gin.Context) {
	var req SendSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.notificationSvc.SendSMS(req.To, req.Message); err != nil {
		if errors.Is(err, domain.ErrSMSDispatch) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "SMS dispatch failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, true)
}
