package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Link is a URL owned by an account that entries may reference.
type Link struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	URL       string    `json:"url" gorm:"size:2048;not null"`
	AccountID uuid.UUID `json:"accountId" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Link) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Profile is the personal header block printed on a résumé.
type Profile struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FullName  string    `json:"fullName" gorm:"size:255;not null"`
	JobTitle  *string   `json:"jobTitle" gorm:"size:255"`
	Email     *string   `json:"email" gorm:"size:255"`
	Phone     *string   `json:"phone" gorm:"size:64"`
	Address   *string   `json:"address" gorm:"size:512"`
	AccountID uuid.UUID `json:"accountId" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Resume is a named résumé document of an account.
type Resume struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	AccountID uuid.UUID `json:"accountId" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
