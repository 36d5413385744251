package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/model"
)

// ErrVerificationTokenSpent is returned when a verification token exists but
// is already used or past its expiry.
var ErrVerificationTokenSpent = errors.New("verification token used or expired")

// AccountRepository defines account persistence operations.
type AccountRepository interface {
	CreateWithVerification(ctx context.Context, account *model.Account, token *model.VerificationToken) error
	Update(ctx context.Context, account *model.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmailOrCreate(ctx context.Context, account *model.Account) (*model.Account, error)
	ConsumeVerificationToken(ctx context.Context, token string, now time.Time) (*model.Account, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo AccountRepository) error) error
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// CreateWithVerification creates the account and its first verification token together.
func (r *accountRepository) CreateWithVerification(ctx context.Context, account *model.Account, token *model.VerificationToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		token.AccountID = account.ID
		return tx.Create(token).Error
	})
}

// Update updates an existing account.
func (r *accountRepository) Update(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

// FindByID finds an account by ID.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByEmail finds an account by email.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// ExistsByEmail reports whether an account with email exists.
func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByEmailOrCreate finds an account by email or creates it if it doesn't exist.
func (r *accountRepository) FindByEmailOrCreate(ctx context.Context, account *model.Account) (*model.Account, error) {
	existing, err := r.FindByEmail(ctx, account.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Account doesn't exist, create it
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

// ConsumeVerificationToken marks token used and its account verified in one
// transaction. The conditional update makes a second consumer lose even when
// both read the token before either wrote.
func (r *accountRepository) ConsumeVerificationToken(ctx context.Context, token string, now time.Time) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vt model.VerificationToken
		if err := tx.Where("token = ?", token).First(&vt).Error; err != nil {
			return err
		}

		res := tx.Model(&model.VerificationToken{}).
			Where("id = ? AND is_used = ? AND expires_at > ?", vt.ID, false, now.UTC()).
			Update("is_used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrVerificationTokenSpent
		}

		if err := tx.Model(&model.Account{}).Where("id = ?", vt.AccountID).Update("is_verified", true).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", vt.AccountID).First(&account).Error
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// WithTransaction executes a function within a database transaction.
func (r *accountRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo AccountRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &accountRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
