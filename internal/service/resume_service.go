package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/model"
	"github.com/Modular-CV/backend/internal/repository"
)

// ResumeService handles resume operations.
type ResumeService interface {
	Create(ctx context.Context, accountID uuid.UUID, title string) (*model.Resume, error)
	List(ctx context.Context, accountID uuid.UUID) ([]model.Resume, error)
	Get(ctx context.Context, accountID, resumeID uuid.UUID) (*model.Resume, error)
}

type resumeService struct {
	repo repository.ResumeRepository
}

// NewResumeService creates a new resume service.
func NewResumeService(repo repository.ResumeRepository) ResumeService {
	return &resumeService{repo: repo}
}

func (s *resumeService) Create(ctx context.Context, accountID uuid.UUID, title string) (*model.Resume, error) {
	resume := &model.Resume{Title: title, AccountID: accountID}
	if err := s.repo.Create(ctx, resume); err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}
	return resume, nil
}

func (s *resumeService) List(ctx context.Context, accountID uuid.UUID) ([]model.Resume, error) {
	resumes, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	return resumes, nil
}

func (s *resumeService) Get(ctx context.Context, accountID, resumeID uuid.UUID) (*model.Resume, error) {
	resume, err := s.repo.FindOwned(ctx, accountID, resumeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("resume")
		}
		return nil, fmt.Errorf("find resume: %w", err)
	}
	return resume, nil
}
