package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/model"
)

// EntryRepository persists entries together with their typed branch,
// dates, location and link reference.
type EntryRepository interface {
	CreateGraph(ctx context.Context, entry *model.Entry) (*model.Entry, error)
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]model.Entry, error)
}

type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository.
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

// CreateGraph inserts entry and every nested record in one transaction and
// returns it reloaded with its relations. On error nothing is written.
func (r *entryRepository) CreateGraph(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	var created model.Entry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Scopes(withEntryRelations).Where("id = ?", entry.ID).First(&created).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *entryRepository) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]model.Entry, error) {
	var entries []model.Entry
	if err := r.db.WithContext(ctx).
		Scopes(withEntryRelations).
		Where("section_id = ?", sectionID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// withEntryRelations preloads every branch with its nested records.
func withEntryRelations(db *gorm.DB) *gorm.DB {
	db = db.
		Preload("SkillEntry.EntryDate.EntryStartDate").
		Preload("SkillEntry.EntryDate.EntryEndDate").
		Preload("ProjectEntry.Link").
		Preload("ProjectEntry.EntryDate.EntryStartDate").
		Preload("ProjectEntry.EntryDate.EntryEndDate")
	for _, branch := range []string{"ProfessionalExperienceEntry", "EducationEntry", "CourseEntry", "CustomEntry"} {
		db = db.
			Preload(branch + ".Link").
			Preload(branch + ".EntryLocation").
			Preload(branch + ".EntryDate.EntryStartDate").
			Preload(branch + ".EntryDate.EntryEndDate")
	}
	return db
}
