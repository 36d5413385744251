package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired is returned when a token's signature holds but it is past exp.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for every other verification failure.
	ErrTokenInvalid = errors.New("token invalid")
)

// Identity is the account claim carried by every token.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Claims represents JWT claims.
type Claims struct {
	Account Identity `json:"account"`
	jwt.RegisteredClaims
}

// TokenConfig holds the independent secrets and lifetimes of both token kinds.
type TokenConfig struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	access  codec
	refresh codec
	now     func() time.Time
}

// NewJWTService creates a JWT service. Both secrets and TTLs are required.
func NewJWTService(cfg TokenConfig) (*JWTService, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, errors.New("token secrets must not be empty")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}
	return &JWTService{
		access:  codec{secret: []byte(cfg.AccessSecret), ttl: cfg.AccessTTL},
		refresh: codec{secret: []byte(cfg.RefreshSecret), ttl: cfg.RefreshTTL},
		now:     time.Now,
	}, nil
}

// GenerateAccessToken signs a short-lived access token for id.
func (s *JWTService) GenerateAccessToken(id Identity) (string, error) {
	return s.access.sign(id, s.now())
}

// GenerateRefreshToken signs a long-lived refresh token for id and returns
// its expiry so callers can persist it alongside the hash.
func (s *JWTService) GenerateRefreshToken(id Identity) (string, time.Time, error) {
	now := s.now()
	token, err := s.refresh.sign(id, now)
	return token, now.Add(s.refresh.ttl), err
}

// ValidateAccessToken verifies an access token and returns its claims.
func (s *JWTService) ValidateAccessToken(token string) (*Claims, error) {
	return s.access.verify(token, s.now)
}

// ValidateRefreshToken verifies a refresh token and returns its claims.
func (s *JWTService) ValidateRefreshToken(token string) (*Claims, error) {
	return s.refresh.verify(token, s.now)
}

// AccessTTL returns the access token lifetime.
func (s *JWTService) AccessTTL() time.Duration { return s.access.ttl }

// RefreshTTL returns the refresh token lifetime.
func (s *JWTService) RefreshTTL() time.Duration { return s.refresh.ttl }

type codec struct {
	secret []byte
	ttl    time.Duration
}

func (c codec) sign(id Identity, now time.Time) (string, error) {
	claims := &Claims{
		Account: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   id.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (c codec) verify(tokenString string, now func() time.Time) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid || claims.Account.ID == uuid.Nil || claims.Account.Email == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
