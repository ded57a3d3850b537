package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platefull/backend/internal/middleware"
	"github.com/platefull/backend/internal/model"
	"github.com/platefull/backend/internal/service"
)

// RecipeHandler covers recipe listing, lookup and CRUD plus daily picks.
type RecipeHandler struct {
	recipes *service.RecipeService
	picks   *service.PicksService
	log     *zap.Logger
}

func NewRecipeHandler(recipes *service.RecipeService, picks *service.PicksService, log *zap.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, picks: picks, log: log}
}

// List returns recipes filtered by optional query, category, owner and sort.
func (h *RecipeHandler) List(c *gin.Context) {
	opts := service.ListOptions{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}
	if owner := c.Query("user_id"); owner != "" {
		ownerID, err := uuid.Parse(owner)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid user id")
			return
		}
		opts.UserID = &ownerID
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), opts)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, recipes)
}

// DailyPicks returns the cached per-day random selection.
func (h *RecipeHandler) DailyPicks(c *gin.Context) {
	recipes, err := h.picks.GetDailyPicks(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, recipes)
}

// Get returns one recipe by id.
func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, recipe)
}

type createRecipeRequest struct {
	Name            string             `json:"name" binding:"required"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	ImageURL        string             `json:"imageUrl"`
	Ingredients     []model.Ingredient `json:"ingredients"`
	Steps           []string           `json:"steps"`
	Calories        int                `json:"calories"`
	CookTimeMinutes int                `json:"cookTimeMinutes"`
	Servings        int                `json:"servings"`
}

// Create stores a manually authored recipe owned by the caller.
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	recipe := &model.Recipe{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		ImageURL:        req.ImageURL,
		Ingredients:     model.JSONBIngredients(req.Ingredients),
		Steps:           model.JSONBStringArray(req.Steps),
		Calories:        req.Calories,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
	}

	created, err := h.recipes.CreateRecipe(c.Request.Context(), recipe, userID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// Update applies a partial update to a recipe the caller owns.
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, userID, body)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, recipe)
}

// Delete removes a recipe the caller owns.
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
