package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platefull/backend/internal/middleware"
	"github.com/platefull/backend/internal/service"
)

// FavoriteHandler covers the caller's favorites collection.
type FavoriteHandler struct {
	favorites *service.FavoriteService
	log       *zap.Logger
}

func NewFavoriteHandler(favorites *service.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, log: log}
}

func (h *FavoriteHandler) recipeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid recipe id")
		return uuid.Nil, false
	}
	return id, true
}

// List returns the caller's favorite recipes, most recently saved first.
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	recipes, err := h.favorites.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, recipes)
}

// Save marks a recipe as a favorite of the caller.
func (h *FavoriteHandler) Save(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	recipeID, ok := h.recipeID(c)
	if !ok {
		return
	}

	favorite, err := h.favorites.SaveFavorite(c.Request.Context(), userID, recipeID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, favorite)
}

// Remove deletes a favorite of the caller.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	recipeID, ok := h.recipeID(c)
	if !ok {
		return
	}

	if err := h.favorites.RemoveFavorite(c.Request.Context(), userID, recipeID); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"removed": true})
}

// Check reports whether the caller has favorited the recipe.
func (h *FavoriteHandler) Check(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	recipeID, ok := h.recipeID(c)
	if !ok {
		return
	}

	favorited, err := h.favorites.IsFavorite(c.Request.Context(), userID, recipeID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"favorited": favorited})
}

// Count reports how many users have favorited the recipe. The number is
// derived from the favorites table on every request.
func (h *FavoriteHandler) Count(c *gin.Context) {
	recipeID, ok := h.recipeID(c)
	if !ok {
		return
	}

	count, err := h.favorites.CountFavorites(c.Request.Context(), recipeID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"count": count})
}
