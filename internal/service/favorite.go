package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platefull/backend/internal/model"
)

// FavoriteService handles the user-recipe bookmark relationship. The insert
// is a single atomic statement over the unique (user_id, recipe_id) index,
// so concurrent saves of the same pair cannot both succeed.
type FavoriteService struct {
	db *gorm.DB
}

// NewFavoriteService creates a new FavoriteService instance
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// SaveFavorite bookmarks a recipe for a user. The recipe must exist;
// a duplicate pair is a conflict.
func (s *FavoriteService) SaveFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*model.Favorite, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Recipe not found")
		}
		return nil, err
	}

	fav := model.Favorite{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&fav)
	if result.Error != nil {
		return nil, NewPersistenceError("server error", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, NewConflictError("Recipe already in favorites")
	}

	return &fav, nil
}

// RemoveFavorite removes a bookmark
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		return NewPersistenceError("server error", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("Favorite not found")
	}
	return nil
}

// IsFavorite reports whether the user has bookmarked the recipe
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountFavorites returns how many users bookmarked the recipe. The count is
// derived here, never stored on the recipe row.
func (s *FavoriteService) CountFavorites(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	return count, err
}

// ListFavorites returns the user's bookmarked recipes, newest bookmark
// first.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
