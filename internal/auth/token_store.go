package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Modular-CV/backend/internal/model"
)

// ErrNoRefreshToken is returned when an account has no stored refresh token.
var ErrNoRefreshToken = errors.New("refresh token not found")

// TokenStoreInterface defines the interface for refresh token storage operations.
// Each account owns at most one row; Store overwrites it.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, accountID uuid.UUID) (*model.RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, accountID uuid.UUID) error
}

// TokenStore keeps refresh token hashes in the relational store.
type TokenStore struct {
	db *gorm.DB
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(db *gorm.DB) *TokenStore {
	return &TokenStore{db: db}
}

// StoreRefreshToken upserts the account's single refresh token row. Overwriting
// the hash revokes every refresh token issued earlier for the account.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	row := &model.RefreshToken{
		AccountID: accountID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt.UTC(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token_hash", "expires_at", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken returns the account's stored row or ErrNoRefreshToken.
func (s *TokenStore) GetRefreshToken(ctx context.Context, accountID uuid.UUID) (*model.RefreshToken, error) {
	var row model.RefreshToken
	err := s.db.WithContext(ctx).Where("account_id = ?", accountID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoRefreshToken
	}
	if err != nil {
		return nil, fmt.Errorf("get refresh token: %w", err)
	}
	return &row, nil
}

// DeleteRefreshToken removes the account's row. Deleting a missing row is not an error.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, accountID uuid.UUID) error {
	if err := s.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&model.RefreshToken{}).Error; err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}
