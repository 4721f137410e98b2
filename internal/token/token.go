// Package token issues and verifies the signed session tokens handed to clients.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the lifetime of a session token.
const DefaultTTL = time.Hour

var (
	// ErrInvalidToken covers absent, malformed, forged and expired tokens alike.
	ErrInvalidToken = errors.New("invalid token")
	// ErrIssuance is returned when a token cannot be signed.
	ErrIssuance = errors.New("token issuance failed")
)

// Claims is the payload carried by a session token.
type Claims struct {
	UID    string `json:"uid"`
	Nombre string `json:"nombre"`
	jwt.RegisteredClaims
}

// Service signs tokens with a server-held HMAC secret.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(secret string, ttl time.Duration, opts ...Option) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue returns a signed token for uid and nombre expiring one TTL from now.
func (s *Service) Issue(uid, nombre string) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("%w: signing secret is empty", ErrIssuance)
	}
	now := s.now()
	claims := Claims{
		UID:    uid,
		Nombre: nombre,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIssuance, err)
	}
	return signed, nil
}

// Verify checks signature and expiry of raw and returns its claims.
func (s *Service) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.UID == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

