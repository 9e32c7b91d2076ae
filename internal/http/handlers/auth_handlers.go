package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc         domain.AuthService
	otpSvc          domain.OTPService
	notificationSvc domain.NotificationService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, otpSvc domain.OTPService, notificationSvc domain.NotificationService) *AuthHandlers {
	return &AuthHandlers{
		authSvc:         authSvc,
		otpSvc:          otpSvc,
		notificationSvc: notificationSvc,
	}
}

// SigninRequest represents sign-in credentials
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignoutRequest names the session to close
type SignoutRequest struct {
	SessionID uint `json:"session_id" binding:"required"`
}

// OTPCreateRequest represents an OTP issuance request. Phone is optional;
// when present the code is also dispatched by SMS.
type OTPCreateRequest struct {
	Email   string            `json:"email" binding:"required,email"`
	Purpose domain.OTPPurpose `json:"purpose" binding:"required,oneof=signup reset_password"`
	Phone   string            `json:"phone" binding:"omitempty,max=32"`
}

// OTPVerifyRequest represents an OTP verification request
type OTPVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"otp" binding:"required,len=6,numeric"`
}

// SignIn handles user sign-in
func (h *AuthHandlers) SignIn(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := domain.ClientContext{
		IP:     c.ClientIP(),
		Device: c.Request.UserAgent(),
	}

	result, err := h.authSvc.SignIn(c.Request.Context(), req.Email, req.Password, client)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign in failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// SignOut handles user sign-out (requires authentication). It closes the
// named session and revokes the token that authenticated this request.
func (h *AuthHandlers) SignOut(c *gin.Context) {
	auth, ok := middleware.AuthFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Caller identity not resolved"})
		return
	}

	var req SignoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.SignOut(c.Request.Context(), auth, req.SessionID); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign out failed"})
		return
	}

	c.JSON(http.StatusOK, true)
}

// RequestOTP handles OTP issuance
func (h *AuthHandlers) RequestOTP(c *gin.Context) {
	var req OTPCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	otp, err := h.otpSvc.Create(c.Request.Context(), req.Email, req.Purpose)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create OTP"})
		return
	}

	// SMS delivery is best-effort; the persisted code stays valid either way.
	if req.Phone != "" {
		message := fmt.Sprintf("Your DentalEase verification code is %s.", otp.Code)
		if err := h.notificationSvc.SendSMS(req.Phone, message); err != nil {
			log.Printf("OTP_SMS_FAILED: email=%s error=%v", req.Email, err)
		}
	}

	c.JSON(http.StatusOK, otp)
}

// VerifyOTP handles OTP verification. A single response covers wrong,
// expired and already-used codes.
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.otpSvc.Verify(c.Request.Context(), req.Email, req.Code)
	if err != nil || !ok {
		if err != nil && !errors.Is(err, domain.ErrInvalidOTP) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OTP verification failed"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OTP"})
		return
	}

	c.JSON(http.StatusOK, true)
}
