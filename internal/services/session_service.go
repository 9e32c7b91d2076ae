package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

const sessionNoCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SessionServiceImpl implements domain.SessionService
type SessionServiceImpl struct {
	sessionRepo domain.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo domain.SessionRepository) domain.SessionService {
	return &SessionServiceImpl{sessionRepo: sessionRepo}
}

// Start implements domain.SessionService. Every sign-in opens a fresh
// session row; concurrent sessions per user are allowed.
func (s *SessionServiceImpl) Start(ctx context.Context, userID uint, client domain.ClientContext) (*domain.Session, error) {
	sessionNo, err := generateSessionNo(10)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session no: %w", err)
	}

	session := &domain.Session{
		SessionNo: sessionNo,
		UserID:    userID,
		IPAddress: client.IP,
		Device:    client.Device,
		SigninAt:  time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// End implements domain.SessionService. Unknown ids propagate the store's
// not-found error.
func (s *SessionServiceImpl) End(ctx context.Context, sessionID uint) (*domain.Session, error) {
	return s.sessionRepo.End(ctx, sessionID)
}

// generateSessionNo produces a random human-shareable session identifier.
func generateSessionNo(length int) (string, error) {
	chars := make([]byte, length)
	max := big.NewInt(int64(len(sessionNoCharset)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		chars[i] = sessionNoCharset[num.Int64()]
	}

	return string(chars), nil
}
