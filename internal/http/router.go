package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/http/handlers"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/http/middleware"
)

// Handlers bundles every handler group the router mounts.
type Handlers struct {
	Auth         *handlers.AuthHandlers
	Appointments *handlers.AppointmentHandlers
	Patients     *handlers.PatientHandlers
	Services     *handlers.ServiceHandlers
	ContactUs    *handlers.ContactUsHandlers
	Content      *handlers.ContentHandlers
	SMS          *handlers.SMSHandlers
}

// BuildRouter wires every route. Public routes cover sign-in, OTP, the
// booking and contact forms, and read-only site content; everything else
// sits behind the bearer token check and role enforcement.
func BuildRouter(h Handlers, authmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	v1 := r.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/signin", h.Auth.SignIn)
	auth.POST("/otp/request", h.Auth.RequestOTP)
	auth.POST("/otp/verify", h.Auth.VerifyOTP)

	// Public booking and inquiry forms, plus what the clinic site renders.
	v1.POST("/appointments", h.Appointments.Create)
	v1.POST("/contact-us", h.ContactUs.Create)
	v1.GET("/services", h.Services.List)
	v1.GET("/services/:id", h.Services.Get)
	v1.GET("/content/active", h.Content.ListActive)
	v1.GET("/content/category/:category", h.Content.GetByCategory)
	v1.GET("/content/category/:category/all", h.Content.ListByCategory)

	p := v1.Group("/").Use(authmw.WithToken(), cb.Enforce())
	p.POST("/auth/signout", h.Auth.SignOut)

	p.GET("/appointments", h.Appointments.List)
	p.GET("/appointments/:id", h.Appointments.Get)
	p.PUT("/appointments/:id", h.Appointments.Update)
	p.DELETE("/appointments/:id", h.Appointments.Delete)

	p.GET("/patients", h.Patients.List)
	p.GET("/patients/:id", h.Patients.Get)
	p.POST("/patients", h.Patients.Create)
	p.PUT("/patients/:id", h.Patients.Update)
	p.DELETE("/patients/:id", h.Patients.Delete)

	p.POST("/services", h.Services.Create)
	p.PUT("/services/:id", h.Services.Update)
	p.DELETE("/services/:id", h.Services.Delete)

	p.GET("/contact-us", h.ContactUs.List)
	p.GET("/contact-us/:id", h.ContactUs.Get)
	p.PUT("/contact-us/:id", h.ContactUs.Update)
	p.DELETE("/contact-us/:id", h.ContactUs.Delete)

	p.GET("/content", h.Content.List)
	p.GET("/content/:id", h.Content.Get)
	p.POST("/content", h.Content.Create)
	p.PUT("/content/:id", h.Content.Update)
	p.DELETE("/content/:id", h.Content.Delete)

	p.POST("/sms/send", h.SMS.Send)

	return r
}
