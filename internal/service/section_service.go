package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/cache"
	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/model"
	"github.com/Modular-CV/backend/internal/repository"
	"github.com/Modular-CV/backend/internal/validation"
)

// Sections never change after creation, so lookups can be cached freely.
const sectionCacheTTL = 10 * time.Minute

// SectionService handles section operations.
type SectionService interface {
	Create(ctx context.Context, accountID uuid.UUID, title string, entryType model.EntryType) (*model.Section, error)
	List(ctx context.Context, accountID uuid.UUID) ([]model.Section, error)
	GetOwned(ctx context.Context, accountID, sectionID uuid.UUID) (*model.Section, error)
}

type sectionService struct {
	repo  repository.SectionRepository
	cache *cache.Client
}

// NewSectionService creates a new section service.
func NewSectionService(repo repository.SectionRepository, cache *cache.Client) SectionService {
	return &sectionService{repo: repo, cache: cache}
}

func (s *sectionService) cacheKey(accountID, sectionID uuid.UUID) string {
	return fmt.Sprintf("section:%s:%s", accountID, sectionID)
}

// Create stores a section. The entry type is fixed here and must be one of
// model.EntryTypes.
func (s *sectionService) Create(ctx context.Context, accountID uuid.UUID, title string, entryType model.EntryType) (*model.Section, error) {
	if !entryType.Valid() {
		return nil, apperrors.NewValidationError([]validation.Issue{{
			Path:    "entryType",
			Message: "must be one of: " + joinEntryTypes(),
		}})
	}

	section := &model.Section{
		Title:     title,
		EntryType: entryType,
		AccountID: accountID,
	}
	if err := s.repo.Create(ctx, section); err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}
	return section, nil
}

func (s *sectionService) List(ctx context.Context, accountID uuid.UUID) ([]model.Section, error) {
	sections, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

// GetOwned returns the section when accountID owns it. Another account's
// section is reported as not found.
func (s *sectionService) GetOwned(ctx context.Context, accountID, sectionID uuid.UUID) (*model.Section, error) {
	key := s.cacheKey(accountID, sectionID)
	var cached model.Section
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	section, err := s.repo.FindOwned(ctx, accountID, sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("section")
		}
		return nil, fmt.Errorf("find section: %w", err)
	}

	_ = s.cache.SetJSON(ctx, key, section, sectionCacheTTL)
	return section, nil
}

func joinEntryTypes() string {
	names := make([]string, len(model.EntryTypes))
	for i, t := range model.EntryTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
