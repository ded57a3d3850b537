package database

import (
	"gorm.io/gorm"

	"github.com/platefull/backend/internal/model"
)

// Migrate runs GORM auto-migration for all persisted entities. The unique
// index on favorites (user_id, recipe_id) is the integrity backstop for
// concurrent duplicate saves.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Recipe{},
		&model.Category{},
		&model.Favorite{},
	)
}

// DefaultCategories is the seed set applied on first boot.
var DefaultCategories = []model.Category{
	{Name: "Breakfast", Icon: "🍳", Color: "#f59e0b"},
	{Name: "Lunch", Icon: "🥪", Color: "#10b981"},
	{Name: "Dinner", Icon: "🍽️", Color: "#6366f1"},
	{Name: "Dessert", Icon: "🍰", Color: "#ec4899"},
	{Name: "Drinks", Icon: "🥤", Color: "#06b6d4"},
	{Name: "Fast Food", Icon: "🍔", Color: "#ef4444"},
	{Name: "Salad", Icon: "🥗", Color: "#84cc16"},
	{Name: "Cake", Icon: "🎂", Color: "#a855f7"},
}

// SeedCategories inserts the default categories, skipping names that exist.
func SeedCategories(db *gorm.DB) error {
	for _, c := range DefaultCategories {
		var count int64
		if err := db.Model(&model.Category{}).Where("LOWER(name) = LOWER(?)", c.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		cat := c
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
	}
	return nil
}
