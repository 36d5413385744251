package entryschema

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Modular-CV/backend/internal/model"
)

func TestBuild_ProjectGraph(t *testing.T) {
	draft, err := newTestRegistry().Parse(model.EntryTypeProject, []byte(`{
		"projectEntry": {
			"title": "CV builder",
			"subtitle": "side project",
			"entryDate": {
				"entryStartDate": {"date": "2020-01-01T00:00:00.000Z", "isOnlyYear": true},
				"entryEndDate": {"isCurrentDate": true, "isVisible": false}
			}
		}
	}`))
	require.NoError(t, err)

	sectionID, linkID := uuid.New(), uuid.New()
	entry := Build(sectionID, draft, &linkID)

	assert.Equal(t, sectionID, entry.SectionID)
	assert.Equal(t, model.EntryTypeProject, entry.EntryType)
	assert.True(t, entry.IsVisible)
	assert.Nil(t, entry.SkillEntry)

	project := entry.ProjectEntry
	require.NotNil(t, project)
	assert.Equal(t, "CV builder", project.Title)
	assert.Equal(t, "side project", *project.Subtitle)
	assert.Equal(t, &linkID, project.LinkID)

	start := project.EntryDate.EntryStartDate
	require.NotNil(t, start.Date)
	assert.True(t, start.Date.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, start.IsVisible)
	assert.True(t, start.IsOnlyYear)

	end := project.EntryDate.EntryEndDate
	assert.Nil(t, end.Date)
	assert.False(t, end.IsVisible)
	assert.False(t, end.IsOnlyYear)
	assert.True(t, end.IsCurrentDate)
}

func TestBuild_OnlyOneBranchPerVariant(t *testing.T) {
	tests := []struct {
		entryType model.EntryType
		payload   string
		check     func(t *testing.T, e *model.Entry)
	}{
		{
			entryType: model.EntryTypeSkill,
			payload:   `{"isVisible": false, "skillEntry": {"name": "Go", "skillLevel": "ADVANCED"}}`,
			check: func(t *testing.T, e *model.Entry) {
				require.NotNil(t, e.SkillEntry)
				assert.False(t, e.IsVisible)
				assert.Equal(t, model.SkillLevelAdvanced, *e.SkillEntry.SkillLevel)
				assert.Nil(t, e.SkillEntry.EntryDate)
			},
		},
		{
			entryType: model.EntryTypeProfessionalExperience,
			payload:   `{"professionalExperienceEntry": {"employer": "ACME", "entryLocation": {"city": "Lisbon", "country": "PT"}, "entryDate": ` + dateJSON + `}}`,
			check: func(t *testing.T, e *model.Entry) {
				pe := e.ProfessionalExperienceEntry
				require.NotNil(t, pe)
				assert.Equal(t, "Lisbon", *pe.EntryLocation.City)
				assert.Equal(t, "PT", *pe.EntryLocation.Country)
				assert.NotNil(t, pe.EntryDate)
			},
		},
		{
			entryType: model.EntryTypeEducation,
			payload:   `{"educationEntry": {"degree": "BSc", "entryDate": ` + dateJSON + `}}`,
			check: func(t *testing.T, e *model.Entry) {
				require.NotNil(t, e.EducationEntry)
				require.NotNil(t, e.EducationEntry.EntryLocation, "location row is always created")
				assert.Nil(t, e.EducationEntry.EntryLocation.City)
			},
		},
		{
			entryType: model.EntryTypeCourse,
			payload:   `{"courseEntry": {"title": "Go", "entryDate": ` + dateJSON + `}}`,
			check: func(t *testing.T, e *model.Entry) {
				require.NotNil(t, e.CourseEntry)
				assert.NotNil(t, e.CourseEntry.EntryLocation)
			},
		},
		{
			entryType: model.EntryTypeCustom,
			payload:   `{"customEntry": {"title": "Talks", "entryDate": ` + dateJSON + `}}`,
			check: func(t *testing.T, e *model.Entry) {
				require.NotNil(t, e.CustomEntry)
				assert.Equal(t, "Talks", *e.CustomEntry.Title)
				assert.NotNil(t, e.CustomEntry.EntryLocation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.entryType), func(t *testing.T) {
			draft, err := newTestRegistry().Parse(tt.entryType, []byte(tt.payload))
			require.NoError(t, err)

			entry := Build(uuid.New(), draft, nil)

			branches := 0
			for _, set := range []bool{
				entry.SkillEntry != nil,
				entry.ProjectEntry != nil,
				entry.ProfessionalExperienceEntry != nil,
				entry.EducationEntry != nil,
				entry.CourseEntry != nil,
				entry.CustomEntry != nil,
			} {
				if set {
					branches++
				}
			}
			assert.Equal(t, 1, branches)
			assert.Equal(t, tt.entryType, entry.EntryType)
			tt.check(t, entry)
		})
	}
}
