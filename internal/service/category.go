package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefull/backend/internal/model"
)

// CategoryService handles category CRUD. Recipes reference categories by
// name, so deletion is blocked while the name is in use.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryService instance
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// ListCategories returns all categories ordered by name
func (s *CategoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category with a case-insensitively unique name.
func (s *CategoryService) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	name := strings.TrimSpace(category.Name)
	if name == "" {
		return nil, NewValidationError("category name is required")
	}
	category.Name = name

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Category{}).
		Where("LOWER(name) = LOWER(?)", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, NewConflictError("Category already exists")
	}

	category.ID = uuid.New()
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		// race past the pre-check lands on the unique index
		if isUniqueViolation(err) {
			return nil, NewConflictError("Category already exists")
		}
		return nil, NewPersistenceError("server error", err)
	}
	return category, nil
}

var categoryColumns = map[string]string{
	"name":     "name",
	"icon":     "icon",
	"color":    "color",
	"imageUrl": "image_url",
}

// UpdateCategory applies the recognized fields present in body.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, body map[string]interface{}) (*model.Category, error) {
	var category model.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Category not found")
		}
		return nil, err
	}

	updates := buildUpdates(body, categoryColumns)
	if len(updates) == 0 {
		return nil, NewValidationError("No fields to update")
	}

	if name, ok := updates["name"].(string); ok {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Category{}).
			Where("LOWER(name) = LOWER(?) AND id <> ?", name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, NewConflictError("Category already exists")
		}
	}

	if err := s.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, NewPersistenceError("server error", err)
	}

	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category unless any recipe still references its
// name.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	var category model.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("Category not found")
		}
		return err
	}

	var inUse int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("category = ?", category.Name).Count(&inUse).Error; err != nil {
		return err
	}
	if inUse > 0 {
		return NewConflictError("Cannot delete category that is being used by recipes")
	}

	return s.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id).Error
}
