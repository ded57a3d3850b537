package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefull/backend/internal/model"
)

// RecipeService handles recipe CRUD and search
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListOptions narrows a recipe listing.
type ListOptions struct {
	Query    string
	Category string
	UserID   *uuid.UUID
	Sort     string
}

// ListRecipes lists recipes filtered by query, category and owner.
// Sort accepts "newest" (default) or "name".
func (s *RecipeService) ListRecipes(ctx context.Context, opts ListOptions) ([]model.Recipe, error) {
	query := s.db.WithContext(ctx)

	if q := strings.TrimSpace(opts.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}
	if opts.UserID != nil {
		query = query.Where("user_id = ?", *opts.UserID)
	}

	switch opts.Sort {
	case "name":
		query = query.Order("name ASC")
	default:
		query = query.Order("created_at DESC")
	}

	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Recipe not found")
		}
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe creates a new recipe owned by userID
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe, userID uuid.UUID) (*model.Recipe, error) {
	if userID == uuid.Nil {
		return nil, NewValidationError("incomplete user")
	}
	if strings.TrimSpace(recipe.Name) == "" {
		return nil, NewValidationError("recipe name is required")
	}

	recipe.ID = uuid.New()
	recipe.UserID = userID
	if recipe.Servings < 1 {
		recipe.Servings = 1
	}
	if recipe.Calories < 0 {
		recipe.Calories = 0
	}
	if recipe.CookTimeMinutes < 0 {
		recipe.CookTimeMinutes = 0
	}

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, NewPersistenceError("server error", err)
	}
	return recipe, nil
}

// recipeColumns maps camelCase request fields to their columns. Only these
// fields are updatable; anything else in the body is ignored.
var recipeColumns = map[string]string{
	"name":            "name",
	"description":     "description",
	"category":        "category",
	"imageUrl":        "image_url",
	"ingredients":     "ingredients",
	"steps":           "steps",
	"calories":        "calories",
	"cookTimeMinutes": "cook_time_minutes",
	"servings":        "servings",
}

// UpdateRecipe applies the recognized fields present in body to the recipe.
// A body with zero recognized fields fails validation.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, userID uuid.UUID, body map[string]interface{}) (*model.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, NewAuthenticationError("not the recipe owner")
	}

	updates := buildUpdates(body, recipeColumns)
	if len(updates) == 0 {
		return nil, NewValidationError("No fields to update")
	}

	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, NewPersistenceError("server error", err)
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe deletes a recipe owned by userID
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if recipe.UserID != userID {
		return NewAuthenticationError("not the recipe owner")
	}
	return s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error
}

// buildUpdates converts the recognized camelCase body fields into a
// column-keyed update map. JSON array fields are re-encoded through their
// model types so the JSONB valuers apply.
func buildUpdates(body map[string]interface{}, columns map[string]string) map[string]interface{} {
	updates := make(map[string]interface{})
	for field, value := range body {
		column, ok := columns[field]
		if !ok {
			continue
		}
		updates[column] = normalizeUpdateValue(column, value)
	}
	return updates
}

func normalizeUpdateValue(column string, value interface{}) interface{} {
	switch column {
	case "ingredients":
		if raw, ok := value.([]interface{}); ok {
			list := make(model.JSONBIngredients, 0, len(raw))
			for _, item := range raw {
				if m, ok := item.(map[string]interface{}); ok {
					ing := model.Ingredient{}
					if v, ok := m["name"].(string); ok {
						ing.Name = v
					}
					if v, ok := m["quantity"].(string); ok {
						ing.Quantity = v
					}
					if v, ok := m["icon"].(string); ok {
						ing.Icon = v
					}
					list = append(list, ing)
				}
			}
			return list
		}
	case "steps":
		if raw, ok := value.([]interface{}); ok {
			list := make(model.JSONBStringArray, 0, len(raw))
			for _, item := range raw {
				if s, ok := item.(string); ok {
					list = append(list, s)
				}
			}
			return list
		}
	}
	return value
}
