package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/platefull/backend/internal/model"
)

func seedRecipe(t *testing.T, db *gorm.DB, name, category string, userID uuid.UUID) *model.Recipe {
	t.Helper()
	recipe := &model.Recipe{
		Name:        name,
		Description: "A " + name + " to cook.",
		Category:    category,
		Ingredients: model.JSONBIngredients{{Name: "salt", Quantity: "1 tsp", Icon: "🧂"}},
		Steps:       model.JSONBStringArray{"Mix.", "Cook."},
		Servings:    2,
		UserID:      userID,
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

func TestCreateAndGetRecipe(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.CreateRecipe(ctx, &model.Recipe{
		Name:        "Tomato Soup 🍅",
		Category:    "Dinner",
		Ingredients: model.JSONBIngredients{{Name: "tomato", Quantity: "500 g", Icon: "🍅"}},
		Steps:       model.JSONBStringArray{"Chop.", "Simmer."},
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, owner, created.UserID)
	assert.Equal(t, 1, created.Servings)

	got, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tomato Soup 🍅", got.Name)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, "tomato", got.Ingredients[0].Name)
}

func TestCreateRecipeValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	_, err := svc.CreateRecipe(ctx, &model.Recipe{Name: "Soup"}, uuid.Nil)
	require.Error(t, err)
	assert.Equal(t, "incomplete user", err.(*Error).Message)

	_, err = svc.CreateRecipe(ctx, &model.Recipe{Name: "   "}, uuid.New())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}

func TestCreateRecipeClampsNegativeNumbers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)

	created, err := svc.CreateRecipe(context.Background(), &model.Recipe{
		Name:            "Iced Soup 🧊",
		Calories:        -100,
		CookTimeMinutes: -15,
	}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, created.Calories)
	assert.Equal(t, 0, created.CookTimeMinutes)

	var stored model.Recipe
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, 0, stored.Calories)
	assert.Equal(t, 0, stored.CookTimeMinutes)
}

func TestGetRecipeNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)

	_, err := svc.GetRecipe(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Recipe not found", err.(*Error).Message)
}

func TestListRecipesFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	seedRecipe(t, db, "Tomato Soup", "Dinner", alice)
	seedRecipe(t, db, "Pancakes", "Breakfast", alice)
	seedRecipe(t, db, "Tomato Salad", "Lunch", bob)

	all, err := svc.ListRecipes(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	tomato, err := svc.ListRecipes(ctx, ListOptions{Query: "ToMaTo"})
	require.NoError(t, err)
	assert.Len(t, tomato, 2)

	breakfast, err := svc.ListRecipes(ctx, ListOptions{Category: "Breakfast"})
	require.NoError(t, err)
	require.Len(t, breakfast, 1)
	assert.Equal(t, "Pancakes", breakfast[0].Name)

	bobs, err := svc.ListRecipes(ctx, ListOptions{UserID: &bob})
	require.NoError(t, err)
	require.Len(t, bobs, 1)
	assert.Equal(t, "Tomato Salad", bobs[0].Name)

	byName, err := svc.ListRecipes(ctx, ListOptions{Sort: "name"})
	require.NoError(t, err)
	require.Len(t, byName, 3)
	assert.Equal(t, "Pancakes", byName[0].Name)
}

func TestUpdateRecipe(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := uuid.New()
	recipe := seedRecipe(t, db, "Tomato Soup", "Dinner", owner)

	updated, err := svc.UpdateRecipe(ctx, recipe.ID, owner, map[string]interface{}{
		"name":            "Roasted Tomato Soup",
		"cookTimeMinutes": float64(40),
		"steps":           []interface{}{"Roast.", "Blend.", "Serve."},
		"unknownField":    "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "Roasted Tomato Soup", updated.Name)
	assert.Equal(t, 40, updated.CookTimeMinutes)
	assert.Equal(t, model.JSONBStringArray{"Roast.", "Blend.", "Serve."}, updated.Steps)
	assert.Equal(t, "Dinner", updated.Category)
}

func TestUpdateRecipeNoFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	owner := uuid.New()
	recipe := seedRecipe(t, db, "Tomato Soup", "Dinner", owner)

	_, err := svc.UpdateRecipe(context.Background(), recipe.ID, owner, map[string]interface{}{
		"unknownField": "x",
	})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
	assert.Equal(t, "No fields to update", err.(*Error).Message)
}

func TestUpdateRecipeNotOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	recipe := seedRecipe(t, db, "Tomato Soup", "Dinner", uuid.New())

	_, err := svc.UpdateRecipe(context.Background(), recipe.ID, uuid.New(), map[string]interface{}{
		"name": "Stolen Soup",
	})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAuthentication))
}

func TestDeleteRecipe(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := uuid.New()
	recipe := seedRecipe(t, db, "Tomato Soup", "Dinner", owner)

	err := svc.DeleteRecipe(ctx, recipe.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAuthentication))

	require.NoError(t, svc.DeleteRecipe(ctx, recipe.ID, owner))

	_, err = svc.GetRecipe(ctx, recipe.ID)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestListRecipesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db)
	owner := uuid.New()

	old := seedRecipe(t, db, "Old Soup", "Dinner", owner)
	require.NoError(t, db.Model(old).Update("created_at", time.Now().Add(-time.Hour)).Error)
	seedRecipe(t, db, "New Soup", "Dinner", owner)

	recipes, err := svc.ListRecipes(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "New Soup", recipes[0].Name)
}
