package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/auth"
	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/metrics"
	"github.com/Modular-CV/backend/internal/model"
	"github.com/Modular-CV/backend/internal/repository"
)

// TokenPair is an access token and the refresh token minted with it.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Account *model.Account `json:"account"`
	Tokens  TokenPair      `json:"tokens"`
}

// SessionService handles the session lifecycle.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, accountID uuid.UUID) error
}

type sessionService struct {
	accountRepo repository.AccountRepository
	jwtService  *auth.JWTService
	tokenStore  auth.TokenStoreInterface
	hasher      PasswordHasher
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time

	// dummyDigest is verified against when the email is unknown so both
	// failure paths cost one hash verification.
	dummyDigest string
}

// NewSessionService creates a new session service.
func NewSessionService(
	accountRepo repository.AccountRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	hasher PasswordHasher,
	m *metrics.Metrics,
	logger *slog.Logger,
) (SessionService, error) {
	dummy, err := hasher.Hash("dummy-password")
	if err != nil {
		return nil, fmt.Errorf("hash dummy password: %w", err)
	}
	return &sessionService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
		hasher:      hasher,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
		dummyDigest: dummy,
	}, nil
}

// Login authenticates an account and returns access and refresh tokens. An
// unknown email and a wrong password fail identically.
func (s *sessionService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	account, err := s.accountRepo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find account: %w", err)
		}
		_, _ = s.hasher.Verify(s.dummyDigest, password)
		s.metrics.Login("invalid_credentials")
		return nil, apperrors.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(account.Password, password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.metrics.Login("invalid_credentials")
		return nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issue(ctx, auth.Identity{ID: account.ID, Email: account.Email})
	if err != nil {
		return nil, err
	}

	s.metrics.Login("ok")
	s.logger.Info("session created", "account_id", account.ID)
	return &LoginResult{Account: account, Tokens: *pair}, nil
}

// Refresh exchanges a refresh token for a new pair. The gates run in order:
// presence, signature and expiry, stored row, stored expiry, stored hash.
// A superseded token passes the signature check but fails the hash check,
// and is reported exactly like a forged one.
func (s *sessionService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		s.metrics.Refresh("missing")
		return nil, apperrors.ErrRefreshTokenMissing
	}

	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			s.metrics.Refresh("expired")
			return nil, apperrors.ErrRefreshTokenExpired
		}
		s.metrics.Refresh("invalid")
		return nil, apperrors.ErrRefreshTokenInvalid
	}

	stored, err := s.tokenStore.GetRefreshToken(ctx, claims.Account.ID)
	if err != nil {
		if errors.Is(err, auth.ErrNoRefreshToken) {
			s.metrics.Refresh("revoked")
			return nil, apperrors.ErrRefreshTokenInvalid
		}
		return nil, err
	}

	if !s.now().Before(stored.ExpiresAt) {
		s.metrics.Refresh("expired")
		return nil, apperrors.ErrRefreshTokenExpired
	}

	ok, err := s.hasher.Verify(stored.TokenHash, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("verify refresh token: %w", err)
	}
	if !ok {
		s.metrics.Refresh("replayed")
		s.logger.Warn("refresh token replay rejected", "account_id", claims.Account.ID)
		return nil, apperrors.ErrRefreshTokenInvalid
	}

	pair, err := s.issue(ctx, claims.Account)
	if err != nil {
		return nil, err
	}
	s.metrics.Refresh("ok")
	return pair, nil
}

// Logout revokes the account's refresh token.
func (s *sessionService) Logout(ctx context.Context, accountID uuid.UUID) error {
	if err := s.tokenStore.DeleteRefreshToken(ctx, accountID); err != nil {
		return err
	}
	s.logger.Info("session revoked", "account_id", accountID)
	return nil
}

// issue mints a pair and overwrites the stored refresh hash, revoking every
// earlier refresh token of the account.
func (s *sessionService) issue(ctx context.Context, id auth.Identity) (*TokenPair, error) {
	access, err := s.jwtService.GenerateAccessToken(id)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refresh, expiresAt, err := s.jwtService.GenerateRefreshToken(id)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	digest, err := s.hasher.Hash(refresh)
	if err != nil {
		return nil, fmt.Errorf("hash refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, id.ID, digest, expiresAt); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
