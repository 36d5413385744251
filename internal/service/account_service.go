package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/cache"
	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/mail"
	"github.com/Modular-CV/backend/internal/metrics"
	"github.com/Modular-CV/backend/internal/model"
	"github.com/Modular-CV/backend/internal/repository"
)

const accountCacheTTL = 5 * time.Minute

// PasswordHasher is the keyed one-way hash used for passwords and refresh tokens.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(digest, plaintext string) (bool, error)
}

// AccountOptions configures registration mail.
type AccountOptions struct {
	ProjectName     string
	Domain          string
	VerificationTTL time.Duration
}

// AccountService handles account operations.
type AccountService interface {
	Register(ctx context.Context, email, password string) (*model.Account, error)
	Verify(ctx context.Context, token string) (*model.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error)
}

type accountService struct {
	repo    repository.AccountRepository
	hasher  PasswordHasher
	mailer  mail.Mailer
	cache   *cache.Client
	metrics *metrics.Metrics
	logger  *slog.Logger
	opts    AccountOptions
	now     func() time.Time
}

// NewAccountService creates a new account service.
func NewAccountService(
	repo repository.AccountRepository,
	hasher PasswordHasher,
	mailer mail.Mailer,
	cache *cache.Client,
	m *metrics.Metrics,
	logger *slog.Logger,
	opts AccountOptions,
) AccountService {
	return &accountService{
		repo:    repo,
		hasher:  hasher,
		mailer:  mailer,
		cache:   cache,
		metrics: m,
		logger:  logger,
		opts:    opts,
		now:     time.Now,
	}
}

func (s *accountService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("account:%s", id.String())
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unverified account and mails its verification link.
// The mail is sent before anything is written: if it fails, no account exists.
func (s *accountService) Register(ctx context.Context, email, password string) (*model.Account, error) {
	email = NormalizeEmail(email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check account existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailTaken
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	token, err := newVerificationToken()
	if err != nil {
		return nil, fmt.Errorf("generate verification token: %w", err)
	}

	msg := mail.VerificationMessage(s.opts.ProjectName, s.opts.Domain, email, token)
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("verification mail failed", "error", err)
		return nil, apperrors.ErrMailNotSent
	}

	account := &model.Account{
		Email:    email,
		Password: digest,
	}
	verification := &model.VerificationToken{
		Token:     token,
		ExpiresAt: s.now().Add(s.opts.VerificationTTL),
	}
	if err := s.repo.CreateWithVerification(ctx, account, verification); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.metrics.Registration()
	s.logger.Info("account registered", "account_id", account.ID)
	return account, nil
}

// Verify consumes a verification token and marks its account verified.
func (s *accountService) Verify(ctx context.Context, token string) (*model.Account, error) {
	account, err := s.repo.ConsumeVerificationToken(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, repository.ErrVerificationTokenSpent) {
			return nil, apperrors.ErrVerificationTokenInvalid
		}
		return nil, fmt.Errorf("consume verification token: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(account.ID))
	s.logger.Info("account verified", "account_id", account.ID)
	return account, nil
}

// GetAccount retrieves an account by ID with caching. A missing account means
// the session outlived it.
func (s *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	var cached model.Account
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionAccountInvalid
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	_ = s.cache.SetJSON(ctx, s.cacheKey(id), account, accountCacheTTL)
	return account, nil
}

func newVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
