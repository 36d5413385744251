package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/model"
)

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Profile, error) {
	var profiles []model.Profile
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
