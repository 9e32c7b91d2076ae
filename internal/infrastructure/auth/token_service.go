package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// TokenServiceImpl implements domain.TokenService with opaque bearer tokens
// backed by Redis. The raw token is "<id>|<secret>"; only a SHA-256 of the
// secret is stored, so a token can never be recovered after minting.
// Revocation deletes the single Redis key for that token.
type TokenServiceImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

type tokenRecord struct {
	TokenID    string      `json:"token_id"`
	UserID     uint        `json:"user_id"`
	Role       domain.Role `json:"role"`
	Name       string      `json:"name"`
	SecretHash string      `json:"secret_hash"`
}

// NewTokenService creates a new Redis-backed token issuer.
func NewTokenService(client *redis.Client, ttl time.Duration) domain.TokenService {
	return &TokenServiceImpl{
		client: client,
		prefix: "token:",
		ttl:    ttl,
	}
}

// Mint implements domain.TokenService
func (t *TokenServiceImpl) Mint(ctx context.Context, user *domain.User, name string) (string, string, error) {
	tokenID, err := randomHex(8)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate token id: %w", err)
	}
	secret, err := randomHex(20)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate token secret: %w", err)
	}

	record := tokenRecord{
		TokenID:    tokenID,
		UserID:     user.ID,
		Role:       user.Role,
		Name:       name,
		SecretHash: hashSecret(secret),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal token record: %w", err)
	}

	if err := t.client.Set(ctx, t.prefix+tokenID, data, t.ttl).Err(); err != nil {
		return "", "", fmt.Errorf("failed to store token: %w", err)
	}

	return tokenID, tokenID + "|" + secret, nil
}

// Validate implements domain.TokenService
func (t *TokenServiceImpl) Validate(ctx context.Context, raw string) (*domain.AccessClaims, error) {
	tokenID, secret, ok := strings.Cut(raw, "|")
	if !ok || tokenID == "" || secret == "" {
		return nil, domain.ErrTokenInvalid
	}

	data, err := t.client.Get(ctx, t.prefix+tokenID).Result()
	if err == redis.Nil {
		// Expired tokens disappear with their TTL, so both unknown and
		// expired land here.
		return nil, domain.ErrTokenInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	var record tokenRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token record: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(record.SecretHash), []byte(hashSecret(secret))) != 1 {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.AccessClaims{
		TokenID: record.TokenID,
		UserID:  record.UserID,
		Role:    record.Role,
		Name:    record.Name,
	}, nil
}

// Revoke implements domain.TokenService
func (t *TokenServiceImpl) Revoke(ctx context.Context, tokenID string) error {
	return t.client.Del(ctx, t.prefix+tokenID).Err()
}

func randomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func hashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
