package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Modular-CV/backend/internal/model"
	"github.com/Modular-CV/backend/internal/repository"
)

// LinkService handles link operations.
type LinkService interface {
	Create(ctx context.Context, accountID uuid.UUID, url string) (*model.Link, error)
	List(ctx context.Context, accountID uuid.UUID) ([]model.Link, error)
}

type linkService struct {
	repo repository.LinkRepository
}

// NewLinkService creates a new link service.
func NewLinkService(repo repository.LinkRepository) LinkService {
	return &linkService{repo: repo}
}

func (s *linkService) Create(ctx context.Context, accountID uuid.UUID, url string) (*model.Link, error) {
	link := &model.Link{URL: url, AccountID: accountID}
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("create link: %w", err)
	}
	return link, nil
}

func (s *linkService) List(ctx context.Context, accountID uuid.UUID) ([]model.Link, error) {
	links, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}
