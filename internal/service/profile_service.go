package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Modular-CV/backend/internal/model"
	"github.com/Modular-CV/backend/internal/repository"
)

// ProfileInput holds the writable profile fields.
type ProfileInput struct {
	FullName string
	JobTitle *string
	Email    *string
	Phone    *string
	Address  *string
}

// ProfileService handles profile operations.
type ProfileService interface {
	Create(ctx context.Context, accountID uuid.UUID, in ProfileInput) (*model.Profile, error)
	List(ctx context.Context, accountID uuid.UUID) ([]model.Profile, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Create(ctx context.Context, accountID uuid.UUID, in ProfileInput) (*model.Profile, error) {
	profile := &model.Profile{
		FullName:  in.FullName,
		JobTitle:  in.JobTitle,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		AccountID: accountID,
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) List(ctx context.Context, accountID uuid.UUID) ([]model.Profile, error) {
	profiles, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}
