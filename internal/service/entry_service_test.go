package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/entryschema"
	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/logging"
	"github.com/Modular-CV/backend/internal/model"
	"github.com/Modular-CV/backend/internal/repository"
	"github.com/Modular-CV/backend/internal/validation"
)

const entryDateJSON = `{
	"entryStartDate": {"date": "2020-01-01T00:00:00.000Z"},
	"entryEndDate": {"isCurrentDate": true}
}`

type entryFixture struct {
	db       *gorm.DB
	sections SectionService
	links    LinkService
	svc      EntryService
	account  *model.Account
}

func newEntryFixture(t *testing.T) *entryFixture {
	t.Helper()
	gormDB := newTestDB(t)
	account := &model.Account{Email: "alice@test.com", Password: "x"}
	require.NoError(t, gormDB.Create(account).Error)

	sections := NewSectionService(repository.NewSectionRepository(gormDB), nil)
	linkRepo := repository.NewLinkRepository(gormDB)
	svc := NewEntryService(
		sections,
		linkRepo,
		repository.NewEntryRepository(gormDB),
		entryschema.NewRegistry(validation.New()),
		nil,
		logging.Discard(),
	)
	return &entryFixture{
		db:       gormDB,
		sections: sections,
		links:    NewLinkService(linkRepo),
		svc:      svc,
		account:  account,
	}
}

func (f *entryFixture) section(t *testing.T, entryType model.EntryType) *model.Section {
	t.Helper()
	section, err := f.sections.Create(context.Background(), f.account.ID, "Section", entryType)
	require.NoError(t, err)
	return section
}

func (f *entryFixture) count(t *testing.T, value interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(value).Count(&n).Error)
	return n
}

func TestEntryService_CreatePerVariant(t *testing.T) {
	tests := []struct {
		entryType model.EntryType
		payload   string
		typed     interface{}
		locations int64
		dates     int64
	}{
		{model.EntryTypeSkill, `{"skillEntry": {"name": "Go", "skillLevel": "ADVANCED"}}`, &model.SkillEntry{}, 0, 0},
		{model.EntryTypeProject, `{"projectEntry": {"title": "CV", "entryDate": ` + entryDateJSON + `}}`, &model.ProjectEntry{}, 0, 1},
		{model.EntryTypeProfessionalExperience, `{"professionalExperienceEntry": {"employer": "Acme", "entryLocation": {"city": "Porto"}, "entryDate": ` + entryDateJSON + `}}`, &model.ProfessionalExperienceEntry{}, 1, 1},
		{model.EntryTypeEducation, `{"educationEntry": {"school": "FEUP", "entryDate": ` + entryDateJSON + `}}`, &model.EducationEntry{}, 1, 1},
		{model.EntryTypeCourse, `{"courseEntry": {"title": "Go", "entryDate": ` + entryDateJSON + `}}`, &model.CourseEntry{}, 1, 1},
		{model.EntryTypeCustom, `{"isVisible": false, "customEntry": {"title": "Talks", "entryDate": ` + entryDateJSON + `}}`, &model.CustomEntry{}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.entryType), func(t *testing.T) {
			f := newEntryFixture(t)
			section := f.section(t, tt.entryType)

			entry, err := f.svc.Create(context.Background(), f.account.ID, section.ID, []byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.entryType, entry.EntryType)
			assert.Equal(t, section.ID, entry.SectionID)
			assert.Equal(t, tt.entryType != model.EntryTypeCustom, entry.IsVisible)

			assert.Equal(t, int64(1), f.count(t, &model.Entry{}))
			assert.Equal(t, int64(1), f.count(t, tt.typed))
			assert.Equal(t, tt.locations, f.count(t, &model.EntryLocation{}))
			assert.Equal(t, tt.dates, f.count(t, &model.EntryDate{}))
			assert.Equal(t, tt.dates, f.count(t, &model.EntryStartDate{}))
			assert.Equal(t, tt.dates, f.count(t, &model.EntryEndDate{}))
		})
	}
}

func TestEntryService_CreateLoadsNestedRecords(t *testing.T) {
	f := newEntryFixture(t)
	section := f.section(t, model.EntryTypeProfessionalExperience)

	payload := `{"professionalExperienceEntry": {"jobTitle": "Engineer", "entryLocation": {"city": "Porto", "country": "PT"}, "entryDate": ` + entryDateJSON + `}}`
	entry, err := f.svc.Create(context.Background(), f.account.ID, section.ID, []byte(payload))
	require.NoError(t, err)

	pe := entry.ProfessionalExperienceEntry
	require.NotNil(t, pe)
	assert.Nil(t, entry.SkillEntry)
	require.NotNil(t, pe.EntryLocation)
	assert.Equal(t, "Porto", *pe.EntryLocation.City)
	require.NotNil(t, pe.EntryDate)
	require.NotNil(t, pe.EntryDate.EntryStartDate)
	require.NotNil(t, pe.EntryDate.EntryStartDate.Date)
	assert.Equal(t, 2020, pe.EntryDate.EntryStartDate.Date.Year())
	assert.True(t, pe.EntryDate.EntryStartDate.IsVisible)
	require.NotNil(t, pe.EntryDate.EntryEndDate)
	assert.True(t, pe.EntryDate.EntryEndDate.IsCurrentDate)
	assert.Nil(t, pe.EntryDate.EntryEndDate.Date)

	listed, err := f.svc.ListBySection(context.Background(), f.account.ID, section.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, entry.ID, listed[0].ID)
}

func TestEntryService_CreateRejectsMismatchedShape(t *testing.T) {
	f := newEntryFixture(t)
	section := f.section(t, model.EntryTypeProject)

	_, err := f.svc.Create(context.Background(), f.account.ID, section.ID,
		[]byte(`{"entryType": "SKILL", "skillEntry": {"name": "Go"}}`))

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Issues)
	assert.Equal(t, int64(0), f.count(t, &model.Entry{}))
	assert.Equal(t, int64(0), f.count(t, &model.SkillEntry{}))
	assert.Equal(t, int64(0), f.count(t, &model.ProjectEntry{}))
}

func TestEntryService_CreateInForeignSection(t *testing.T) {
	f := newEntryFixture(t)
	other := &model.Account{Email: "bob@test.com", Password: "x"}
	require.NoError(t, f.db.Create(other).Error)
	foreign, err := f.sections.Create(context.Background(), other.ID, "Bob's", model.EntryTypeSkill)
	require.NoError(t, err)

	tests := []struct {
		name      string
		sectionID uuid.UUID
	}{
		{name: "another account's section", sectionID: foreign.ID},
		{name: "unknown section", sectionID: uuid.New()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), f.account.ID, tt.sectionID, []byte(`{"skillEntry": {"name": "Go"}}`))
			assert.ErrorIs(t, err, apperrors.ErrNotFound)
		})
	}
	assert.Equal(t, int64(0), f.count(t, &model.Entry{}))
}

func TestEntryService_LinkResolution(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()

	own, err := f.links.Create(ctx, f.account.ID, "https://alice.dev")
	require.NoError(t, err)
	other := &model.Account{Email: "bob@test.com", Password: "x"}
	require.NoError(t, f.db.Create(other).Error)
	foreign, err := f.links.Create(ctx, other.ID, "https://bob.dev")
	require.NoError(t, err)

	tests := []struct {
		name     string
		linkID   string
		expected *uuid.UUID
	}{
		{name: "own link is attached", linkID: own.ID.String(), expected: &own.ID},
		{name: "foreign link is ignored", linkID: foreign.ID.String()},
		{name: "unknown link is ignored", linkID: uuid.NewString()},
	}

	section := f.section(t, model.EntryTypeCourse)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := `{"courseEntry": {"title": "Go", "linkId": "` + tt.linkID + `", "entryDate": ` + entryDateJSON + `}}`
			entry, err := f.svc.Create(ctx, f.account.ID, section.ID, []byte(payload))
			require.NoError(t, err)
			require.NotNil(t, entry.CourseEntry)

			if tt.expected == nil {
				assert.Nil(t, entry.CourseEntry.LinkID)
				assert.Nil(t, entry.CourseEntry.Link)
				return
			}
			require.NotNil(t, entry.CourseEntry.LinkID)
			assert.Equal(t, *tt.expected, *entry.CourseEntry.LinkID)
			require.NotNil(t, entry.CourseEntry.Link)
			assert.Equal(t, "https://alice.dev", entry.CourseEntry.Link.URL)
		})
	}
}
