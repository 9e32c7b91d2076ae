package e2e

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
	httpx "github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/http"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/http/handlers"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/http/middleware"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/infrastructure/auth"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/infrastructure/database"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/infrastructure/repositories"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/mocks"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/services"
)

const casbinModelPath = "../../../config/rbac_model.conf"

// TestServer runs the full HTTP stack over an in-memory database and an
// in-process Redis, so the end-to-end tests need no external services.
type TestServer struct {
	Server        *httptest.Server
	DB            *gorm.DB
	Redis         *redis.Client
	Notifications *mocks.MockNotificationService
	Client        *http.Client
}

func newTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	passwordSvc := auth.NewPasswordService()
	if err := database.Seed(db, passwordSvc); err != nil {
		t.Fatalf("seed: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cas, err := auth.NewCasbinService(db, casbinModelPath)
	if err != nil {
		t.Fatalf("casbin: %v", err)
	}
	seedTestPolicies(t, cas)

	tokenSvc := auth.NewTokenService(rdb, time.Hour)
	notificationSvc := mocks.NewMockNotificationService()

	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	otpRepo := repositories.NewOTPRepository(db)

	sessionSvc := services.NewSessionService(sessionRepo)
	otpSvc := services.NewOTPService(userRepo, otpRepo, 10*time.Minute)
	authSvc := services.NewAuthService(userRepo, sessionSvc, passwordSvc, tokenSvc)

	h := httpx.Handlers{
		Auth:         handlers.NewAuthHandlers(authSvc, otpSvc, notificationSvc),
		Appointments: handlers.NewAppointmentHandlers(services.NewResourceService[domain.Appointment](repositories.NewCrudRepository[domain.Appointment](db))),
		Patients:     handlers.NewPatientHandlers(services.NewResourceService[domain.Patient](repositories.NewCrudRepository[domain.Patient](db))),
		Services:     handlers.NewServiceHandlers(services.NewResourceService[domain.ClinicService](repositories.NewCrudRepository[domain.ClinicService](db))),
		ContactUs:    handlers.NewContactUsHandlers(services.NewResourceService[domain.ContactMessage](repositories.NewCrudRepository[domain.ContactMessage](db))),
		Content:      handlers.NewContentHandlers(services.NewContentService(repositories.NewContentRepository(db))),
		SMS:          handlers.NewSMSHandlers(notificationSvc),
	}

	router := httpx.BuildRouter(h, middleware.NewAuthMW(tokenSvc), middleware.NewCasbinMW(cas.E))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:        server,
		DB:            db,
		Redis:         rdb,
		Notifications: notificationSvc,
		Client:        server.Client(),
	}
}

func seedTestPolicies(t *testing.T, cas *auth.CasbinService) {
	t.Helper()
	policies := [][]string{
		{"role_administrator", "/v1/*", "(GET|POST|PUT|DELETE)"},
		{"role_staff", "/v1/appointments*", "(GET|POST|PUT|DELETE)"},
		{"role_staff", "/v1/patients*", "(GET|POST|PUT|DELETE)"},
		{"role_staff", "/v1/services*", "(GET|POST|PUT|DELETE)"},
		{"role_staff", "/v1/contact-us*", "(GET|POST|PUT|DELETE)"},
		{"role_staff", "/v1/auth/signout", "POST"},
		{"role_patient", "/v1/auth/signout", "POST"},
	}
	for _, p := range policies {
		if _, err := cas.E.AddPolicy(p[0], p[1], p[2]); err != nil {
			t.Fatalf("add policy %v: %v", p, err)
		}
	}
}
