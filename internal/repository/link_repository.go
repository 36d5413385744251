package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/model"
)

// LinkRepository defines link persistence operations.
type LinkRepository interface {
	Create(ctx context.Context, link *model.Link) error
	FindOwned(ctx context.Context, accountID, linkID uuid.UUID) (*model.Link, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Link, error)
}

type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a new link repository.
func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) Create(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *linkRepository) FindOwned(ctx context.Context, accountID, linkID uuid.UUID) (*model.Link, error) {
	var link model.Link
	if err := r.db.WithContext(ctx).Where("id = ? AND account_id = ?", linkID, accountID).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *linkRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Link, error) {
	var links []model.Link
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Order("created_at ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
