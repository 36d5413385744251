package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/model"
)

func strPtr(s string) *string { return &s }

func TestEntryRepository_CreateGraphPersistsEveryRecord(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	account := seedAccount(t, gormDB, "alice@test.com")

	section := &model.Section{Title: "Work", EntryType: model.EntryTypeProfessionalExperience, AccountID: account.ID}
	require.NoError(t, NewSectionRepository(gormDB).Create(ctx, section))
	link := &model.Link{URL: "https://acme.test", AccountID: account.ID}
	require.NoError(t, NewLinkRepository(gormDB).Create(ctx, link))

	start := time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)
	entry := &model.Entry{
		SectionID: section.ID,
		EntryType: model.EntryTypeProfessionalExperience,
		IsVisible: true,
		ProfessionalExperienceEntry: &model.ProfessionalExperienceEntry{
			LinkID:        &link.ID,
			JobTitle:      strPtr("Engineer"),
			EntryLocation: &model.EntryLocation{City: strPtr("Porto")},
			EntryDate: &model.EntryDate{
				EntryStartDate: &model.EntryStartDate{Date: &start, IsVisible: true},
				EntryEndDate:   &model.EntryEndDate{IsVisible: true, IsCurrentDate: true},
			},
		},
	}

	repo := NewEntryRepository(gormDB)
	created, err := repo.CreateGraph(ctx, entry)
	require.NoError(t, err)

	pe := created.ProfessionalExperienceEntry
	require.NotNil(t, pe)
	assert.Equal(t, "Engineer", *pe.JobTitle)
	require.NotNil(t, pe.Link)
	assert.Equal(t, "https://acme.test", pe.Link.URL)
	require.NotNil(t, pe.EntryLocation)
	assert.Equal(t, "Porto", *pe.EntryLocation.City)
	require.NotNil(t, pe.EntryDate)
	require.NotNil(t, pe.EntryDate.EntryStartDate.Date)
	assert.True(t, pe.EntryDate.EntryStartDate.Date.Equal(start))
	assert.True(t, pe.EntryDate.EntryEndDate.IsCurrentDate)

	assert.Equal(t, int64(1), countRows(t, gormDB, &model.Entry{}))
	assert.Equal(t, int64(1), countRows(t, gormDB, &model.ProfessionalExperienceEntry{}))
	assert.Equal(t, int64(1), countRows(t, gormDB, &model.EntryLocation{}))
	assert.Equal(t, int64(1), countRows(t, gormDB, &model.EntryDate{}))
	assert.Equal(t, int64(1), countRows(t, gormDB, &model.EntryStartDate{}))
	assert.Equal(t, int64(1), countRows(t, gormDB, &model.EntryEndDate{}))

	listed, err := repo.ListBySection(ctx, section.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.NotNil(t, listed[0].ProfessionalExperienceEntry.EntryDate.EntryEndDate)
}

func TestEntryRepository_CreateGraphIsAtomic(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	account := seedAccount(t, gormDB, "alice@test.com")
	section := &model.Section{Title: "Courses", EntryType: model.EntryTypeCourse, AccountID: account.ID}
	require.NoError(t, NewSectionRepository(gormDB).Create(ctx, section))

	// Fail the last insert of the graph, after the entry, location and dates.
	require.NoError(t, gormDB.Callback().Create().Before("gorm:create").Register("test:fail_course", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "course_entries" {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))

	_, err := NewEntryRepository(gormDB).CreateGraph(ctx, &model.Entry{
		SectionID: section.ID,
		EntryType: model.EntryTypeCourse,
		IsVisible: true,
		CourseEntry: &model.CourseEntry{
			Title:         "Go",
			EntryLocation: &model.EntryLocation{},
			EntryDate: &model.EntryDate{
				EntryStartDate: &model.EntryStartDate{},
				EntryEndDate:   &model.EntryEndDate{},
			},
		},
	})
	require.ErrorContains(t, err, "disk full")

	for _, m := range []interface{}{
		&model.Entry{}, &model.CourseEntry{}, &model.EntryLocation{},
		&model.EntryDate{}, &model.EntryStartDate{}, &model.EntryEndDate{},
	} {
		assert.Equal(t, int64(0), countRows(t, gormDB, m))
	}
}
