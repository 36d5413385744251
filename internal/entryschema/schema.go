// Package entryschema maps a section's entry type onto the payload shape its
// entries must take and onto the nested records persisted for them.
package entryschema

import (
	"github.com/google/uuid"

	"github.com/Modular-CV/backend/internal/model"
)

// Draft is a validated entry payload of exactly one variant.
type Draft interface {
	EntryType() model.EntryType
	// LinkRef is the requested link id, nil when none was supplied.
	LinkRef() *uuid.UUID
	visible() bool
	fill(entry *model.Entry, linkID *uuid.UUID)
}

// StartDateInput is the lower bound of a date range.
type StartDateInput struct {
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	IsVisible  *bool   `json:"isVisible"`
	IsOnlyYear *bool   `json:"isOnlyYear"`
}

// EndDateInput is the upper bound of a date range.
type EndDateInput struct {
	Date          *string `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	IsVisible     *bool   `json:"isVisible"`
	IsOnlyYear    *bool   `json:"isOnlyYear"`
	IsCurrentDate *bool   `json:"isCurrentDate"`
}

// EntryDateInput carries both bounds. Each bound object must be present; its
// date may be omitted.
type EntryDateInput struct {
	EntryStartDate *StartDateInput `json:"entryStartDate" validate:"required"`
	EntryEndDate   *EndDateInput   `json:"entryEndDate" validate:"required"`
}

// LocationInput is an optional city/country pair.
type LocationInput struct {
	City    *string `json:"city" validate:"omitempty,max=255"`
	Country *string `json:"country" validate:"omitempty,max=255"`
}

// SkillFields is the skillEntry branch.
type SkillFields struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Information *string         `json:"information"`
	SkillLevel  *string         `json:"skillLevel" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	EntryDate   *EntryDateInput `json:"entryDate"`
}

// ProjectFields is the projectEntry branch.
type ProjectFields struct {
	LinkID      *string         `json:"linkId" validate:"omitempty,uuid"`
	Title       string          `json:"title" validate:"required,max=255"`
	Subtitle    *string         `json:"subtitle" validate:"omitempty,max=255"`
	Description *string         `json:"description"`
	EntryDate   *EntryDateInput `json:"entryDate" validate:"required"`
}

// ProfessionalExperienceFields is the professionalExperienceEntry branch.
type ProfessionalExperienceFields struct {
	LinkID        *string         `json:"linkId" validate:"omitempty,uuid"`
	JobTitle      *string         `json:"jobTitle" validate:"omitempty,max=255"`
	Employer      *string         `json:"employer" validate:"omitempty,max=255"`
	Description   *string         `json:"description"`
	EntryLocation *LocationInput  `json:"entryLocation"`
	EntryDate     *EntryDateInput `json:"entryDate" validate:"required"`
}

// EducationFields is the educationEntry branch.
type EducationFields struct {
	LinkID        *string         `json:"linkId" validate:"omitempty,uuid"`
	School        *string         `json:"school" validate:"omitempty,max=255"`
	Degree        *string         `json:"degree" validate:"omitempty,max=255"`
	Description   *string         `json:"description"`
	EntryLocation *LocationInput  `json:"entryLocation"`
	EntryDate     *EntryDateInput `json:"entryDate" validate:"required"`
}

// CourseFields is the courseEntry branch.
type CourseFields struct {
	LinkID        *string         `json:"linkId" validate:"omitempty,uuid"`
	Title         string          `json:"title" validate:"required,max=255"`
	Institution   *string         `json:"institution" validate:"omitempty,max=255"`
	Description   *string         `json:"description"`
	EntryLocation *LocationInput  `json:"entryLocation"`
	EntryDate     *EntryDateInput `json:"entryDate" validate:"required"`
}

// CustomFields is the customEntry branch.
type CustomFields struct {
	LinkID        *string         `json:"linkId" validate:"omitempty,uuid"`
	Title         *string         `json:"title" validate:"omitempty,max=255"`
	Subtitle      *string         `json:"subtitle" validate:"omitempty,max=255"`
	Description   *string         `json:"description"`
	EntryLocation *LocationInput  `json:"entryLocation"`
	EntryDate     *EntryDateInput `json:"entryDate" validate:"required"`
}

// SkillDraft is a SKILL entry payload.
type SkillDraft struct {
	Type       string       `json:"entryType" validate:"omitempty,eq=SKILL"`
	IsVisible  *bool        `json:"isVisible"`
	SkillEntry *SkillFields `json:"skillEntry" validate:"required"`
}

// ProjectDraft is a PROJECT entry payload.
type ProjectDraft struct {
	Type         string         `json:"entryType" validate:"omitempty,eq=PROJECT"`
	IsVisible    *bool          `json:"isVisible"`
	ProjectEntry *ProjectFields `json:"projectEntry" validate:"required"`
}

// ProfessionalExperienceDraft is a PROFESSIONAL_EXPERIENCE entry payload.
type ProfessionalExperienceDraft struct {
	Type                        string                        `json:"entryType" validate:"omitempty,eq=PROFESSIONAL_EXPERIENCE"`
	IsVisible                   *bool                         `json:"isVisible"`
	ProfessionalExperienceEntry *ProfessionalExperienceFields `json:"professionalExperienceEntry" validate:"required"`
}

// EducationDraft is an EDUCATION entry payload.
type EducationDraft struct {
	Type           string           `json:"entryType" validate:"omitempty,eq=EDUCATION"`
	IsVisible      *bool            `json:"isVisible"`
	EducationEntry *EducationFields `json:"educationEntry" validate:"required"`
}

// CourseDraft is a COURSE entry payload.
type CourseDraft struct {
	Type        string        `json:"entryType" validate:"omitempty,eq=COURSE"`
	IsVisible   *bool         `json:"isVisible"`
	CourseEntry *CourseFields `json:"courseEntry" validate:"required"`
}

// CustomDraft is a CUSTOM entry payload.
type CustomDraft struct {
	Type        string        `json:"entryType" validate:"omitempty,eq=CUSTOM"`
	IsVisible   *bool         `json:"isVisible"`
	CustomEntry *CustomFields `json:"customEntry" validate:"required"`
}

func (*SkillDraft) EntryType() model.EntryType { return model.EntryTypeSkill }
func (*ProjectDraft) EntryType() model.EntryType { return model.EntryTypeProject }
func (*ProfessionalExperienceDraft) EntryType() model.EntryType {
	return model.EntryTypeProfessionalExperience
}
func (*EducationDraft) EntryType() model.EntryType { return model.EntryTypeEducation }
func (*CourseDraft) EntryType() model.EntryType { return model.EntryTypeCourse }
func (*CustomDraft) EntryType() model.EntryType { return model.EntryTypeCustom }

func (*SkillDraft) LinkRef() *uuid.UUID { return nil }
func (d *ProjectDraft) LinkRef() *uuid.UUID { return parseLink(d.ProjectEntry.LinkID) }
func (d *ProfessionalExperienceDraft) LinkRef() *uuid.UUID { return parseLink(d.ProfessionalExperienceEntry.LinkID) }
func (d *EducationDraft) LinkRef() *uuid.UUID { return parseLink(d.EducationEntry.LinkID) }
func (d *CourseDraft) LinkRef() *uuid.UUID { return parseLink(d.CourseEntry.LinkID) }
func (d *CustomDraft) LinkRef() *uuid.UUID { return parseLink(d.CustomEntry.LinkID) }

func (d *SkillDraft) visible() bool { return boolOr(d.IsVisible, true) }
func (d *ProjectDraft) visible() bool { return boolOr(d.IsVisible, true) }
func (d *ProfessionalExperienceDraft) visible() bool { return boolOr(d.IsVisible, true) }
func (d *EducationDraft) visible() bool { return boolOr(d.IsVisible, true) }
func (d *CourseDraft) visible() bool { return boolOr(d.IsVisible, true) }
func (d *CustomDraft) visible() bool { return boolOr(d.IsVisible, true) }

func parseLink(raw *string) *uuid.UUID {
	if raw == nil || *raw == "" {
		return nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil
	}
	return &id
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
