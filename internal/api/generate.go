package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/platefull/backend/internal/middleware"
	"github.com/platefull/backend/internal/service"
)

// GenerateHandler drives the two-phase recipe generation flow.
type GenerateHandler struct {
	generation *service.GenerationService
	log        *zap.Logger
}

func NewGenerateHandler(generation *service.GenerationService, log *zap.Logger) *GenerateHandler {
	return &GenerateHandler{generation: generation, log: log}
}

type candidatesRequest struct {
	FreeText    string `json:"free_text"`
	Category    string `json:"category"`
	QuickAction string `json:"quick_action"`
	Vegetarian  bool   `json:"vegetarian"`
}

func (r candidatesRequest) input() service.GenerationInput {
	return service.GenerationInput{
		FreeText:    r.FreeText,
		Category:    r.Category,
		QuickAction: r.QuickAction,
		Vegetarian:  r.Vegetarian,
	}
}

// Candidates runs phase one and returns up to three recipe ideas.
func (h *GenerateHandler) Candidates(c *gin.Context) {
	var req candidatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	candidates, err := h.generation.GenerateCandidates(c.Request.Context(), req.input())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, candidates)
}

type fullRecipeRequest struct {
	candidatesRequest
	Candidate service.RecipeCandidate `json:"candidate"`
}

// Recipe runs phase two for the chosen candidate, renders its image and
// persists the result under the caller's account.
func (h *GenerateHandler) Recipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req fullRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Candidate.RecipeName == "" {
		respondError(c, http.StatusBadRequest, "candidate is required")
		return
	}

	recipe, err := h.generation.CreateRecipeFromSelection(c.Request.Context(), req.Candidate, req.input(), userID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, recipe)
}
