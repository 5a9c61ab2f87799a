package scope

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Manager issues and verifies access tokens.
type Manager interface {
	CreateToken(payload Payload) (string, error)
	Verify(token string) (Payload, error)
	TTL() time.Duration
}

type implManager struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}

// New creates an HS256 token Manager.
func New(secretKey, issuer string, ttl time.Duration) (Manager, error) {
	if secretKey == "" {
		return nil, errors.New("scope: secret key is required")
	}
	if ttl <= 0 {
		return nil, errors.New("scope: ttl must be positive")
	}
	return &implManager{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		now:       time.Now,
	}, nil
}
