package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func (m *implManager) TTL() time.Duration {
	return m.ttl
}

// CreateToken signs payload, filling the registered time claims.
func (m *implManager) CreateToken(payload Payload) (string, error) {
	if payload.Subject == "" {
		return "", errors.New("scope: subject is required")
	}

	now := m.now()
	payload.Issuer = m.issuer
	payload.ID = uuid.NewString()
	payload.IssuedAt = jwt.NewNumericDate(now)
	payload.NotBefore = jwt.NewNumericDate(now)
	payload.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("scope: sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates token. Only HMAC signatures are accepted.
func (m *implManager) Verify(token string) (Payload, error) {
	var payload Payload
	parsed, err := jwt.ParseWithClaims(token, &payload, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secretKey, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, ErrInvalidToken
	}
	if !parsed.Valid || payload.Subject == "" {
		return Payload{}, ErrInvalidToken
	}
	return payload, nil
}
