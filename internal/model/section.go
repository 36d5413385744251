package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryType is the discriminator fixing which entry shape a section accepts.
type EntryType string

const (
	EntryTypeSkill                  EntryType = "SKILL"
	EntryTypeProject                EntryType = "PROJECT"
	EntryTypeProfessionalExperience EntryType = "PROFESSIONAL_EXPERIENCE"
	EntryTypeEducation              EntryType = "EDUCATION"
	EntryTypeCourse                 EntryType = "COURSE"
	EntryTypeCustom                 EntryType = "CUSTOM"
)

// EntryTypes lists every discriminator in declaration order.
var EntryTypes = []EntryType{
	EntryTypeSkill,
	EntryTypeProject,
	EntryTypeProfessionalExperience,
	EntryTypeEducation,
	EntryTypeCourse,
	EntryTypeCustom,
}

// Valid reports whether t is one of the known discriminators.
func (t EntryType) Valid() bool {
	for _, known := range EntryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Section groups entries of a single type. EntryType is fixed at creation.
type Section struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	EntryType EntryType `json:"entryType" gorm:"type:varchar(32);not null"`
	AccountID uuid.UUID `json:"accountId" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Entries []Entry `json:"-" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
