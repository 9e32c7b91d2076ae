package domain

import "errors"

// Authentication errors. Kept deliberately low-detail so responses never
// distinguish "unknown user" from "wrong password" or "expired code".
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrUserNotFound       = errors.New("user not found")
)

// Token errors. Expired tokens disappear with their store TTL, so expiry
// and revocation both surface as ErrTokenInvalid.
var (
	ErrTokenInvalid = errors.New("invalid token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
)

// Resource errors
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicate     = errors.New("duplicate value for unique field")
	ErrCategoryTaken = errors.New("content for this category already exists")
)

// Upstream errors
var (
	ErrSMSDispatch = errors.New("sms dispatch failed")
)
