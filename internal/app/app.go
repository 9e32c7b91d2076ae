package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/config"
	httpx "github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/http"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/http/handlers"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/http/middleware"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/infrastructure/auth"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/infrastructure/database"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/infrastructure/notifications"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/infrastructure/repositories"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/services"
)

// Run assembles the service and blocks serving HTTP.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	passwordSvc := auth.NewPasswordService()

	if cfg.Seed {
		if err := database.Seed(gdb, passwordSvc); err != nil {
			return err
		}
	}

	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	tokenSvc := auth.NewTokenService(rdb, cfg.TokenTTL)
	notificationSvc := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)

	userRepo := repositories.NewUserRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(gdb)
	otpRepo := repositories.NewOTPRepository(gdb)

	sessionSvc := services.NewSessionService(sessionRepo)
	otpSvc := services.NewOTPService(userRepo, otpRepo, cfg.OTPTTL)
	authSvc := services.NewAuthService(userRepo, sessionSvc, passwordSvc, tokenSvc)

	appointmentSvc := services.NewResourceService[domain.Appointment](repositories.NewCrudRepository[domain.Appointment](gdb))
	patientSvc := services.NewResourceService[domain.Patient](repositories.NewCrudRepository[domain.Patient](gdb))
	catalogueSvc := services.NewResourceService[domain.ClinicService](repositories.NewCrudRepository[domain.ClinicService](gdb))
	contactSvc := services.NewResourceService[domain.ContactMessage](repositories.NewCrudRepository[domain.ContactMessage](gdb))
	contentSvc := services.NewContentService(repositories.NewContentRepository(gdb))

	h := httpx.Handlers{
		Auth:         handlers.NewAuthHandlers(authSvc, otpSvc, notificationSvc),
		Appointments: handlers.NewAppointmentHandlers(appointmentSvc),
		Patients:     handlers.NewPatientHandlers(patientSvc),
		Services:     handlers.NewServiceHandlers(catalogueSvc),
		ContactUs:    handlers.NewContactUsHandlers(contactSvc),
		Content:      handlers.NewContentHandlers(contentSvc),
		SMS:          handlers.NewSMSHandlers(notificationSvc),
	}

	authMW := middleware.NewAuthMW(tokenSvc)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(h, authMW, casbinMW)

	seedPolicies(cas)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role grants on first boot. An operator
// can change them afterwards; a non-empty policy table is left alone.
func seedPolicies(cas *auth.CasbinService) {
	policies, _ := cas.E.GetPolicy()
	if len(policies) > 0 {
		return
	}

	cas.E.AddPolicy("role_administrator", "/v1/*", "(GET|POST|PUT|DELETE)")
	cas.E.AddPolicy("role_staff", "/v1/appointments*", "(GET|POST|PUT|DELETE)")
	cas.E.AddPolicy("role_staff", "/v1/patients*", "(GET|POST|PUT|DELETE)")
	cas.E.AddPolicy("role_staff", "/v1/services*", "(GET|POST|PUT|DELETE)")
	cas.E.AddPolicy("role_staff", "/v1/contact-us*", "(GET|POST|PUT|DELETE)")
	cas.E.AddPolicy("role_staff", "/v1/auth/signout", "POST")
	cas.E.AddPolicy("role_patient", "/v1/auth/signout", "POST")
	_ = cas.E.SavePolicy()
	log.Println("casbin: seeded default policies")
}
