package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/model"
)

// SectionRepository defines section persistence operations.
type SectionRepository interface {
	Create(ctx context.Context, section *model.Section) error
	FindOwned(ctx context.Context, accountID, sectionID uuid.UUID) (*model.Section, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Section, error)
}

type sectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository creates a new section repository.
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) Create(ctx context.Context, section *model.Section) error {
	return r.db.WithContext(ctx).Create(section).Error
}

// FindOwned returns the section only when accountID owns it.
func (r *sectionRepository) FindOwned(ctx context.Context, accountID, sectionID uuid.UUID) (*model.Section, error) {
	var section model.Section
	if err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", sectionID, accountID).
		First(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Section, error) {
	var sections []model.Section
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}
