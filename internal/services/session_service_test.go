package services

import (
	"context"
	"testing"
	"time"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/mocks"
)

func TestSessionServiceImpl_Start(t *testing.T) {
	var persisted *domain.Session
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
		session.ID = 1
		persisted = session
		return nil
	}

	svc := NewSessionService(sessionRepo)
	client := domain.ClientContext{IP: "203.0.113.7", Device: "Mozilla/5.0"}

	session, err := svc.Start(context.Background(), 42, client)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if persisted == nil {
		t.Fatal("expected a session row to be persisted")
	}
	if session.UserID != 42 {
		t.Errorf("expected user id 42, got %d", session.UserID)
	}
	if session.IPAddress != "203.0.113.7" {
		t.Errorf("expected client ip recorded, got %s", session.IPAddress)
	}
	if session.Device != "Mozilla/5.0" {
		t.Errorf("expected device recorded, got %s", session.Device)
	}
	if len(session.SessionNo) != 10 {
		t.Errorf("expected a 10-character session no, got %q", session.SessionNo)
	}
	if session.SigninAt.After(time.Now()) {
		t.Error("sign-in time should not be in the future")
	}
	if session.SignoutAt != nil {
		t.Error("expected a fresh session to be open")
	}
}

func TestSessionServiceImpl_StartAlwaysCreatesNewRow(t *testing.T) {
	var count int
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
		count++
		session.ID = uint(count)
		return nil
	}

	svc := NewSessionService(sessionRepo)
	client := domain.ClientContext{IP: "203.0.113.7", Device: "Mozilla/5.0"}

	first, err := svc.Start(context.Background(), 42, client)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	second, err := svc.Start(context.Background(), 42, client)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if count != 2 {
		t.Fatalf("expected 2 created rows, got %d", count)
	}
	if first.SessionNo == second.SessionNo {
		t.Error("expected distinct session identifiers")
	}
}

func TestSessionServiceImpl_End(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.EndFunc = func(ctx context.Context, id uint) (*domain.Session, error) {
		if id != 7 {
			return nil, domain.ErrSessionNotFound
		}
		now := time.Now()
		return &domain.Session{ID: 7, SigninAt: now.Add(-time.Hour), SignoutAt: &now}, nil
	}

	svc := NewSessionService(sessionRepo)

	session, err := svc.End(context.Background(), 7)
	if err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if session.SignoutAt == nil {
		t.Fatal("expected sign-out time to be set")
	}
	if session.SignoutAt.Before(session.SigninAt) {
		t.Error("sign-out time should not precede sign-in time")
	}

	if _, err := svc.End(context.Background(), 999); err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}
