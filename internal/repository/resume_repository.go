package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/model"
)

// ResumeRepository defines resume persistence operations.
type ResumeRepository interface {
	Create(ctx context.Context, resume *model.Resume) error
	FindOwned(ctx context.Context, accountID, resumeID uuid.UUID) (*model.Resume, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Resume, error)
}

type resumeRepository struct {
	db *gorm.DB
}

// NewResumeRepository creates a new resume repository.
func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, resume *model.Resume) error {
	return r.db.WithContext(ctx).Create(resume).Error
}

func (r *resumeRepository) FindOwned(ctx context.Context, accountID, resumeID uuid.UUID) (*model.Resume, error) {
	var resume model.Resume
	if err := r.db.WithContext(ctx).Where("id = ? AND account_id = ?", resumeID, accountID).First(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Resume, error) {
	var resumes []model.Resume
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Order("created_at ASC").Find(&resumes).Error; err != nil {
		return nil, err
	}
	return resumes, nil
}
