package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is the persisted recipe entity. A recipe is written in a single
// insert after generation completes; there is no draft state in the database.
type Recipe struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
	Name            string           `gorm:"size:255;not null" json:"name"`
	Description     string           `gorm:"type:text" json:"description"`
	Category        string           `gorm:"size:50" json:"category"`
	ImageURL        string           `gorm:"size:512" json:"image_url"`
	Ingredients     JSONBIngredients `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps           JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Calories        int              `gorm:"not null;default:0" json:"calories"`
	CookTimeMinutes int              `gorm:"not null;default:0" json:"cook_time_minutes"`
	Servings        int              `gorm:"not null;default:1" json:"servings"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
