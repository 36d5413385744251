package entryschema

import (
	"time"

	"github.com/google/uuid"

	"github.com/Modular-CV/backend/internal/model"
	"github.com/Modular-CV/backend/internal/validation"
)

// Build turns a draft into the nested records created for one entry. linkID
// is attached to the typed branch when non-nil; callers pass only ids they
// resolved. Skill entries never carry a link.
func Build(sectionID uuid.UUID, draft Draft, linkID *uuid.UUID) *model.Entry {
	entry := &model.Entry{
		SectionID: sectionID,
		EntryType: draft.EntryType(),
		IsVisible: draft.visible(),
	}
	draft.fill(entry, linkID)
	return entry
}

func (d *SkillDraft) fill(entry *model.Entry, _ *uuid.UUID) {
	in := d.SkillEntry
	skill := &model.SkillEntry{
		Name:        in.Name,
		Information: in.Information,
	}
	if in.SkillLevel != nil {
		level := model.SkillLevel(*in.SkillLevel)
		skill.SkillLevel = &level
	}
	if in.EntryDate != nil {
		skill.EntryDate = buildDate(in.EntryDate)
	}
	entry.SkillEntry = skill
}

func (d *ProjectDraft) fill(entry *model.Entry, linkID *uuid.UUID) {
	in := d.ProjectEntry
	entry.ProjectEntry = &model.ProjectEntry{
		LinkID:      linkID,
		Title:       in.Title,
		Subtitle:    in.Subtitle,
		Description: in.Description,
		EntryDate:   buildDate(in.EntryDate),
	}
}

func (d *ProfessionalExperienceDraft) fill(entry *model.Entry, linkID *uuid.UUID) {
	in := d.ProfessionalExperienceEntry
	entry.ProfessionalExperienceEntry = &model.ProfessionalExperienceEntry{
		LinkID:        linkID,
		JobTitle:      in.JobTitle,
		Employer:      in.Employer,
		Description:   in.Description,
		EntryLocation: buildLocation(in.EntryLocation),
		EntryDate:     buildDate(in.EntryDate),
	}
}

func (d *EducationDraft) fill(entry *model.Entry, linkID *uuid.UUID) {
	in := d.EducationEntry
	entry.EducationEntry = &model.EducationEntry{
		LinkID:        linkID,
		School:        in.School,
		Degree:        in.Degree,
		Description:   in.Description,
		EntryLocation: buildLocation(in.EntryLocation),
		EntryDate:     buildDate(in.EntryDate),
	}
}

func (d *CourseDraft) fill(entry *model.Entry, linkID *uuid.UUID) {
	in := d.CourseEntry
	entry.CourseEntry = &model.CourseEntry{
		LinkID:        linkID,
		Title:         in.Title,
		Institution:   in.Institution,
		Description:   in.Description,
		EntryLocation: buildLocation(in.EntryLocation),
		EntryDate:     buildDate(in.EntryDate),
	}
}

func (d *CustomDraft) fill(entry *model.Entry, linkID *uuid.UUID) {
	in := d.CustomEntry
	entry.CustomEntry = &model.CustomEntry{
		LinkID:        linkID,
		Title:         in.Title,
		Subtitle:      in.Subtitle,
		Description:   in.Description,
		EntryLocation: buildLocation(in.EntryLocation),
		EntryDate:     buildDate(in.EntryDate),
	}
}

// buildLocation always yields a row; absent input gives an empty location.
func buildLocation(in *LocationInput) *model.EntryLocation {
	loc := &model.EntryLocation{}
	if in != nil {
		loc.City = in.City
		loc.Country = in.Country
	}
	return loc
}

func buildDate(in *EntryDateInput) *model.EntryDate {
	start, end := in.EntryStartDate, in.EntryEndDate
	return &model.EntryDate{
		EntryStartDate: &model.EntryStartDate{
			Date:       parseDate(start.Date),
			IsVisible:  boolOr(start.IsVisible, true),
			IsOnlyYear: boolOr(start.IsOnlyYear, false),
		},
		EntryEndDate: &model.EntryEndDate{
			Date:          parseDate(end.Date),
			IsVisible:     boolOr(end.IsVisible, true),
			IsOnlyYear:    boolOr(end.IsOnlyYear, false),
			IsCurrentDate: boolOr(end.IsCurrentDate, false),
		},
	}
}

// parseDate expects a value already checked by the datetime rule.
func parseDate(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	t, err := time.Parse(validation.ISODateTime, *raw)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
