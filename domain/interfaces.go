package domain

import "context"

// UserRepository defines user data access operations.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
}

// SessionRepository defines session ledger operations. Sessions are never
// deleted; End stamps the sign-out time.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, id uint) (*Session, error)
	End(ctx context.Context, id uint) (*Session, error)
}

// OTPRepository defines one-time passcode ledger operations. Consume marks a
// matching live code used in a single conditional update so two concurrent
// verifications cannot both succeed.
type OTPRepository interface {
	Create(ctx context.Context, otp *UserOTP) error
	Consume(ctx context.Context, email, code string) (bool, error)
}

// CrudRepository is the generic store contract shared by every CRUD
// resource. List returns newest rows first.
type CrudRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id uint, changes map[string]any) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// ContentRepository extends the generic contract with category lookups.
type ContentRepository interface {
	CrudRepository[ContentBlock]
	FindByCategory(ctx context.Context, category string) (*ContentBlock, error)
	ListByCategory(ctx context.Context, category string) ([]ContentBlock, error)
	ListActive(ctx context.Context) ([]ContentBlock, error)
}

// AuthService defines the authentication orchestration.
type AuthService interface {
	SignIn(ctx context.Context, email, password string, client ClientContext) (*AuthResult, error)
	SignOut(ctx context.Context, auth AuthContext, sessionID uint) error
}

// SessionService defines session lifecycle operations.
type SessionService interface {
	Start(ctx context.Context, userID uint, client ClientContext) (*Session, error)
	End(ctx context.Context, sessionID uint) (*Session, error)
}

// OTPService defines one-time passcode operations.
type OTPService interface {
	Create(ctx context.Context, email string, purpose OTPPurpose) (*UserOTP, error)
	Verify(ctx context.Context, email, code string) (bool, error)
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService is the opaque bearer-token issuer. Mint returns the raw token
// exactly once; Revoke invalidates a single token, not all tokens of the
// user.
type TokenService interface {
	Mint(ctx context.Context, user *User, name string) (tokenID string, raw string, err error)
	Validate(ctx context.Context, raw string) (*AccessClaims, error)
	Revoke(ctx context.Context, tokenID string) error
}

// NotificationService defines outbound notification dispatch.
type NotificationService interface {
	SendSMS(to, message string) error
}
