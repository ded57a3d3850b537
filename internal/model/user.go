package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account record. Email is a unique lookup index only; every
// relationship (recipes, favorites) is keyed by the immutable ID.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Email        string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	PictureURL   string         `gorm:"size:512" json:"picture_url"`
	// Credits defaults to 10 per account. No code path decrements it yet;
	// the product behavior is unresolved.
	Credits     int      `gorm:"not null;default:10" json:"credits"`
	Preferences JSONBMap `gorm:"type:jsonb;not null;default:'{}'" json:"preferences"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
