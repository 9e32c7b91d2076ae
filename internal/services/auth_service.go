package services

import (
	"context"
	"fmt"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessionSvc  domain.SessionService
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionSvc domain.SessionService,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionSvc:  sessionSvc,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// SignIn implements domain.AuthService. Unknown email and wrong password
// both surface as ErrInvalidCredentials so the response never confirms
// whether an account exists.
func (s *AuthServiceImpl) SignIn(ctx context.Context, email, password string, client domain.ClientContext) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	// Token name is email+id, for auditability only.
	tokenName := fmt.Sprintf("%s%d", user.Email, user.ID)
	_, raw, err := s.tokenSvc.Mint(ctx, user, tokenName)
	if err != nil {
		return nil, fmt.Errorf("failed to mint access token: %w", err)
	}

	session, err := s.sessionSvc.Start(ctx, user.ID, client)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return &domain.AuthResult{
		User: domain.UserSummary{
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
		Session:     session,
		AccessToken: raw,
	}, nil
}

// SignOut implements domain.AuthService. It ends the named session and
// revokes only the token that authenticated this request; other tokens of
// the same user stay live.
func (s *AuthServiceImpl) SignOut(ctx context.Context, auth domain.AuthContext, sessionID uint) error {
	if _, err := s.sessionSvc.End(ctx, sessionID); err != nil {
		return err
	}

	if err := s.tokenSvc.Revoke(ctx, auth.TokenID); err != nil {
		return fmt.Errorf("failed to revoke access token: %w", err)
	}

	return nil
}
