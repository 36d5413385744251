package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is a registered user of the résumé builder.
type Account struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email      string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password   string    `json:"-" gorm:"size:255;not null"` // argon2id digest, never serialized
	IsVerified bool      `json:"isVerified" gorm:"default:false;not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Relations
	VerificationTokens []VerificationToken `json:"-" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	RefreshToken       *RefreshToken       `json:"-" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// VerificationToken is a single-use credential that flips an account to verified.
type VerificationToken struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Token     string    `json:"-" gorm:"uniqueIndex;size:64;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	IsUsed    bool      `json:"isUsed" gorm:"default:false;not null"`
	AccountID uuid.UUID `json:"accountId" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (v *VerificationToken) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.ExpiresAt = v.ExpiresAt.UTC()
	return nil
}

// RefreshToken holds the fingerprint of the single live refresh token of an account.
// AccountID is unique: issuing a new token overwrites the row.
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	AccountID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex"`
	TokenHash string    `gorm:"size:255;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate sets UUID before creating the record.
func (r *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
