package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/entryschema"
	"github.com/Modular-CV/backend/internal/metrics"
	"github.com/Modular-CV/backend/internal/model"
	"github.com/Modular-CV/backend/internal/repository"
)

// EntryService creates and lists the entries of a section.
type EntryService interface {
	Create(ctx context.Context, accountID, sectionID uuid.UUID, payload []byte) (*model.Entry, error)
	ListBySection(ctx context.Context, accountID, sectionID uuid.UUID) ([]model.Entry, error)
}

type entryService struct {
	sections SectionService
	links    repository.LinkRepository
	entries  repository.EntryRepository
	registry *entryschema.Registry
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewEntryService creates a new entry service.
func NewEntryService(
	sections SectionService,
	links repository.LinkRepository,
	entries repository.EntryRepository,
	registry *entryschema.Registry,
	m *metrics.Metrics,
	logger *slog.Logger,
) EntryService {
	return &entryService{
		sections: sections,
		links:    links,
		entries:  entries,
		registry: registry,
		metrics:  m,
		logger:   logger,
	}
}

// Create validates payload against the schema of the section's entry type and
// persists the resulting graph in one transaction. A linkId that does not
// resolve among the account's links is dropped without failing the request.
func (s *entryService) Create(ctx context.Context, accountID, sectionID uuid.UUID, payload []byte) (*model.Entry, error) {
	section, err := s.sections.GetOwned(ctx, accountID, sectionID)
	if err != nil {
		return nil, err
	}

	draft, err := s.registry.Parse(section.EntryType, payload)
	if err != nil {
		return nil, err
	}

	linkID, err := s.resolveLink(ctx, accountID, draft.LinkRef())
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.CreateGraph(ctx, entryschema.Build(section.ID, draft, linkID))
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.metrics.EntryCreated(string(entry.EntryType))
	return entry, nil
}

func (s *entryService) resolveLink(ctx context.Context, accountID uuid.UUID, ref *uuid.UUID) (*uuid.UUID, error) {
	if ref == nil {
		return nil, nil
	}
	link, err := s.links.FindOwned(ctx, accountID, *ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("entry link not resolved, ignoring", "link_id", *ref)
			return nil, nil
		}
		return nil, fmt.Errorf("find link: %w", err)
	}
	return &link.ID, nil
}

// ListBySection returns the section's entries with every relation loaded.
func (s *entryService) ListBySection(ctx context.Context, accountID, sectionID uuid.UUID) ([]model.Entry, error) {
	section, err := s.sections.GetOwned(ctx, accountID, sectionID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListBySection(ctx, section.ID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}
