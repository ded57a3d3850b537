package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/platefull/backend/internal/model"
)

// GenerationService runs the two-phase recipe generation pipeline:
// candidates, then full recipe, then image, then a single persisting insert.
// Nothing is written before the final step, so a failed phase leaves no
// state behind. No phase is retried automatically.
type GenerationService struct {
	db    *gorm.DB
	llm   *LLMService
	image *ImageService
	log   *zap.Logger
}

// NewGenerationService creates a new GenerationService instance
func NewGenerationService(db *gorm.DB, llm *LLMService, image *ImageService, log *zap.Logger) *GenerationService {
	return &GenerationService{
		db:    db,
		llm:   llm,
		image: image,
		log:   log,
	}
}

// GenerateCandidates produces three candidate recipe summaries for the
// given input. Validation and the vegetarian input check both run before
// any network call. In vegetarian mode the candidate list is post-filtered
// against the restricted keyword set; the model cannot be trusted to honor
// the dietary clause in the prompt.
func (s *GenerationService) GenerateCandidates(ctx context.Context, in GenerationInput) ([]RecipeCandidate, error) {
	if in.Empty() {
		return nil, NewValidationError("no generation input")
	}

	if in.Vegetarian {
		if match := ContainsRestrictedItem(in.FreeText); match.Matched {
			return nil, NewValidationError("request contains non-vegetarian items: " + strings.Join(match.Items, ", "))
		}
	}

	content, err := s.llm.Complete(ctx, buildCandidatePrompt(in))
	if err != nil {
		s.log.Error("candidate generation failed", zap.Error(err))
		return nil, NewGenerationError("malformed AI response", err)
	}

	candidates, err := parseCandidates(content)
	if err != nil {
		s.log.Error("candidate parsing failed", zap.Error(err))
		return nil, NewGenerationError("malformed AI response", err)
	}

	if in.Vegetarian {
		candidates = filterVegetarian(candidates)
		if len(candidates) == 0 {
			return nil, NewGenerationError("no vegetarian candidates", nil)
		}
	}

	return candidates, nil
}

// filterVegetarian drops candidates whose serialized form contains any
// restricted keyword.
func filterVegetarian(candidates []RecipeCandidate) []RecipeCandidate {
	kept := make([]RecipeCandidate, 0, len(candidates))
	for _, c := range candidates {
		serialized, err := json.Marshal(c)
		if err != nil {
			continue
		}
		if match := ContainsRestrictedItem(string(serialized)); !match.Matched {
			kept = append(kept, c)
		}
	}
	return kept
}

// GenerateFullRecipe runs phase 2 for a selected candidate. The dietary
// check is re-applied to the full serialized recipe even though phase 1
// already filtered, because elaboration can introduce new ingredients.
func (s *GenerationService) GenerateFullRecipe(ctx context.Context, candidate RecipeCandidate, in GenerationInput) (*GeneratedRecipe, error) {
	content, err := s.llm.Complete(ctx, buildFullRecipePrompt(candidate, in))
	if err != nil {
		s.log.Error("full recipe generation failed", zap.Error(err))
		return nil, NewGenerationError("malformed AI response", err)
	}

	recipe, err := parseFullRecipe(content)
	if err != nil {
		s.log.Error("full recipe parsing failed", zap.Error(err))
		return nil, NewGenerationError("malformed AI response", err)
	}

	if in.Vegetarian {
		serialized, merr := json.Marshal(recipe)
		if merr == nil {
			if match := ContainsRestrictedItem(string(serialized)); match.Matched {
				s.log.Warn("model produced non-vegetarian recipe",
					zap.String("recipe", candidate.RecipeName),
					zap.Strings("items", match.Items))
				return nil, NewGenerationError("non-vegetarian content generated", nil)
			}
		}
	}

	return recipe, nil
}

// Persist writes the assembled recipe in one insert and returns the stored
// row with its server-assigned fields.
func (s *GenerationService) Persist(ctx context.Context, candidate RecipeCandidate, generated *GeneratedRecipe, imageURL string, userID uuid.UUID) (*model.Recipe, error) {
	if userID == uuid.Nil {
		return nil, NewValidationError("incomplete user")
	}

	ingredients := make(model.JSONBIngredients, 0, len(generated.Ingredients))
	for _, ing := range generated.Ingredients {
		ingredients = append(ingredients, model.Ingredient{
			Name:     ing.Ingredient,
			Quantity: ing.Quantity,
			Icon:     ing.Icon,
		})
	}

	recipe := model.Recipe{
		ID:              uuid.New(),
		Name:            candidate.RecipeName,
		Description:     candidate.Description,
		Category:        generated.Category,
		ImageURL:        imageURL,
		Ingredients:     ingredients,
		Steps:           model.JSONBStringArray(generated.Steps),
		Calories:        int(generated.Calories),
		CookTimeMinutes: int(generated.CookTime),
		Servings:        int(generated.ServeTo),
		UserID:          userID,
	}
	if recipe.Servings < 1 {
		recipe.Servings = 1
	}
	if recipe.Calories < 0 {
		recipe.Calories = 0
	}
	if recipe.CookTimeMinutes < 0 {
		recipe.CookTimeMinutes = 0
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		s.log.Error("failed to persist generated recipe", zap.Error(err))
		return nil, NewPersistenceError("server error", err)
	}

	return &recipe, nil
}

// CreateRecipeFromSelection runs full generation, image rendering and
// persistence in strict sequence. Each phase failure aborts the pipeline
// immediately; only the final insert has an externally visible side effect,
// so there is nothing to roll back. Context cancellation aborts whichever
// phase is in flight.
func (s *GenerationService) CreateRecipeFromSelection(ctx context.Context, candidate RecipeCandidate, in GenerationInput, userID uuid.UUID) (*model.Recipe, error) {
	if userID == uuid.Nil {
		return nil, NewValidationError("incomplete user")
	}

	generated, err := s.GenerateFullRecipe(ctx, candidate, in)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.image.RenderImage(ctx, generated.ImagePrompt, in.Vegetarian)
	if err != nil {
		return nil, err
	}

	return s.Persist(ctx, candidate, generated, imageURL, userID)
}
