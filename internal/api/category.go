package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platefull/backend/internal/model"
	"github.com/platefull/backend/internal/service"
)

// CategoryHandler covers category listing and management.
type CategoryHandler struct {
	categories *service.CategoryService
	log        *zap.Logger
}

func NewCategoryHandler(categories *service.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, log: log}
}

// List returns all categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, categories)
}

type createCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	ImageURL string `json:"imageUrl"`
}

// Create adds a new category. Names are unique case-insensitively.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.categories.CreateCategory(c.Request.Context(), &model.Category{
		Name:     req.Name,
		Icon:     req.Icon,
		Color:    req.Color,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// Update applies a partial update to a category.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.categories.UpdateCategory(c.Request.Context(), id, body)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, category)
}

// Delete removes a category that no recipe references.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.categories.DeleteCategory(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
