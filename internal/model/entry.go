package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillLevel grades a skill entry.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "BEGINNER"
	SkillLevelIntermediate SkillLevel = "INTERMEDIATE"
	SkillLevelAdvanced     SkillLevel = "ADVANCED"
	SkillLevelExpert       SkillLevel = "EXPERT"
)

// Entry is a single item of a section. Exactly one typed branch is populated,
// the one selected by EntryType.
type Entry struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	SectionID uuid.UUID `json:"sectionId" gorm:"type:char(36);not null;index"`
	EntryType EntryType `json:"entryType" gorm:"type:varchar(32);not null"`
	IsVisible bool      `json:"isVisible" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	SkillEntry                  *SkillEntry                  `json:"skillEntry,omitempty" gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
	ProjectEntry                *ProjectEntry                `json:"projectEntry,omitempty" gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
	ProfessionalExperienceEntry *ProfessionalExperienceEntry `json:"professionalExperienceEntry,omitempty" gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
	EducationEntry              *EducationEntry              `json:"educationEntry,omitempty" gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
	CourseEntry                 *CourseEntry                 `json:"courseEntry,omitempty" gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
	CustomEntry                 *CustomEntry                 `json:"customEntry,omitempty" gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// SkillEntry is the SKILL branch. Its date range is optional.
type SkillEntry struct {
	ID          uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	EntryID     uuid.UUID   `json:"entryId" gorm:"type:char(36);not null;uniqueIndex"`
	Name        string      `json:"name" gorm:"size:255;not null"`
	Information *string     `json:"information" gorm:"type:text"`
	SkillLevel  *SkillLevel `json:"skillLevel" gorm:"type:varchar(32)"`
	EntryDateID *uuid.UUID  `json:"-" gorm:"type:char(36)"`
	EntryDate   *EntryDate  `json:"entryDate,omitempty" gorm:"foreignKey:EntryDateID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *SkillEntry) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ProjectEntry is the PROJECT branch. Projects carry no location.
type ProjectEntry struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	EntryID     uuid.UUID  `json:"entryId" gorm:"type:char(36);not null;uniqueIndex"`
	LinkID      *uuid.UUID `json:"linkId" gorm:"type:char(36);index"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Subtitle    *string    `json:"subtitle" gorm:"size:255"`
	Description *string    `json:"description" gorm:"type:text"`

	Link        *Link      `json:"link,omitempty" gorm:"foreignKey:LinkID;constraint:OnDelete:SET NULL"`
	EntryDate   *EntryDate `json:"entryDate,omitempty" gorm:"foreignKey:EntryDateID"`
	EntryDateID *uuid.UUID `json:"-" gorm:"type:char(36)"`
}

// BeforeCreate sets UUID before creating the record.
func (p *ProjectEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProfessionalExperienceEntry is the PROFESSIONAL_EXPERIENCE branch.
type ProfessionalExperienceEntry struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	EntryID     uuid.UUID  `json:"entryId" gorm:"type:char(36);not null;uniqueIndex"`
	LinkID      *uuid.UUID `json:"linkId" gorm:"type:char(36);index"`
	JobTitle    *string    `json:"jobTitle" gorm:"size:255"`
	Employer    *string    `json:"employer" gorm:"size:255"`
	Description *string    `json:"description" gorm:"type:text"`

	Link            *Link          `json:"link,omitempty" gorm:"foreignKey:LinkID;constraint:OnDelete:SET NULL"`
	EntryLocation   *EntryLocation `json:"entryLocation,omitempty" gorm:"foreignKey:EntryLocationID"`
	EntryLocationID *uuid.UUID     `json:"-" gorm:"type:char(36)"`
	EntryDate       *EntryDate     `json:"entryDate,omitempty" gorm:"foreignKey:EntryDateID"`
	EntryDateID     *uuid.UUID     `json:"-" gorm:"type:char(36)"`
}

// BeforeCreate sets UUID before creating the record.
func (p *ProfessionalExperienceEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// EducationEntry is the EDUCATION branch.
type EducationEntry struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	EntryID     uuid.UUID  `json:"entryId" gorm:"type:char(36);not null;uniqueIndex"`
	LinkID      *uuid.UUID `json:"linkId" gorm:"type:char(36);index"`
	School      *string    `json:"school" gorm:"size:255"`
	Degree      *string    `json:"degree" gorm:"size:255"`
	Description *string    `json:"description" gorm:"type:text"`

	Link            *Link          `json:"link,omitempty" gorm:"foreignKey:LinkID;constraint:OnDelete:SET NULL"`
	EntryLocation   *EntryLocation `json:"entryLocation,omitempty" gorm:"foreignKey:EntryLocationID"`
	EntryLocationID *uuid.UUID     `json:"-" gorm:"type:char(36)"`
	EntryDate       *EntryDate     `json:"entryDate,omitempty" gorm:"foreignKey:EntryDateID"`
	EntryDateID     *uuid.UUID     `json:"-" gorm:"type:char(36)"`
}

// BeforeCreate sets UUID before creating the record.
func (e *EducationEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// CourseEntry is the COURSE branch.
type CourseEntry struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	EntryID     uuid.UUID  `json:"entryId" gorm:"type:char(36);not null;uniqueIndex"`
	LinkID      *uuid.UUID `json:"linkId" gorm:"type:char(36);index"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Institution *string    `json:"institution" gorm:"size:255"`
	Description *string    `json:"description" gorm:"type:text"`

	Link            *Link          `json:"link,omitempty" gorm:"foreignKey:LinkID;constraint:OnDelete:SET NULL"`
	EntryLocation   *EntryLocation `json:"entryLocation,omitempty" gorm:"foreignKey:EntryLocationID"`
	EntryLocationID *uuid.UUID     `json:"-" gorm:"type:char(36)"`
	EntryDate       *EntryDate     `json:"entryDate,omitempty" gorm:"foreignKey:EntryDateID"`
	EntryDateID     *uuid.UUID     `json:"-" gorm:"type:char(36)"`
}

// BeforeCreate sets UUID before creating the record.
func (c *CourseEntry) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CustomEntry is the free-form CUSTOM branch.
type CustomEntry struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	EntryID     uuid.UUID  `json:"entryId" gorm:"type:char(36);not null;uniqueIndex"`
	LinkID      *uuid.UUID `json:"linkId" gorm:"type:char(36);index"`
	Title       *string    `json:"title" gorm:"size:255"`
	Subtitle    *string    `json:"subtitle" gorm:"size:255"`
	Description *string    `json:"description" gorm:"type:text"`

	Link            *Link          `json:"link,omitempty" gorm:"foreignKey:LinkID;constraint:OnDelete:SET NULL"`
	EntryLocation   *EntryLocation `json:"entryLocation,omitempty" gorm:"foreignKey:EntryLocationID"`
	EntryLocationID *uuid.UUID     `json:"-" gorm:"type:char(36)"`
	EntryDate       *EntryDate     `json:"entryDate,omitempty" gorm:"foreignKey:EntryDateID"`
	EntryDateID     *uuid.UUID     `json:"-" gorm:"type:char(36)"`
}

// BeforeCreate sets UUID before creating the record.
func (c *CustomEntry) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// EntryLocation is a city/country pair owned by exactly one typed entry.
type EntryLocation struct {
	ID      uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	City    *string   `json:"city" gorm:"size:255"`
	Country *string   `json:"country" gorm:"size:255"`
}

// BeforeCreate sets UUID before creating the record.
func (l *EntryLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// EntryDate owns the start/end pair of exactly one typed entry.
type EntryDate struct {
	ID uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`

	EntryStartDate *EntryStartDate `json:"entryStartDate,omitempty" gorm:"foreignKey:EntryDateID;constraint:OnDelete:CASCADE"`
	EntryEndDate   *EntryEndDate   `json:"entryEndDate,omitempty" gorm:"foreignKey:EntryDateID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (d *EntryDate) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// EntryStartDate is the lower bound of an entry's date range.
type EntryStartDate struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	EntryDateID uuid.UUID  `json:"entryDateId" gorm:"type:char(36);not null;uniqueIndex"`
	Date        *time.Time `json:"date"`
	IsVisible   bool       `json:"isVisible" gorm:"not null"`
	IsOnlyYear  bool       `json:"isOnlyYear" gorm:"not null"`
}

// BeforeCreate sets UUID before creating the record.
func (d *EntryStartDate) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// EntryEndDate is the upper bound of an entry's date range.
type EntryEndDate struct {
	ID            uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	EntryDateID   uuid.UUID  `json:"entryDateId" gorm:"type:char(36);not null;uniqueIndex"`
	Date          *time.Time `json:"date"`
	IsVisible     bool       `json:"isVisible" gorm:"not null"`
	IsOnlyYear    bool       `json:"isOnlyYear" gorm:"not null"`
	IsCurrentDate bool       `json:"isCurrentDate" gorm:"not null"`
}

// BeforeCreate sets UUID before creating the record.
func (d *EntryEndDate) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// All returns every model managed by AutoMigrate, parents first.
func All() []interface{} {
	return []interface{}{
		&Account{},
		&VerificationToken{},
		&RefreshToken{},
		&Link{},
		&Profile{},
		&Resume{},
		&Section{},
		&EntryLocation{},
		&EntryDate{},
		&EntryStartDate{},
		&EntryEndDate{},
		&Entry{},
		&SkillEntry{},
		&ProjectEntry{},
		&ProfessionalExperienceEntry{},
		&EducationEntry{},
		&CourseEntry{},
		&CustomEntry{},
	}
}
