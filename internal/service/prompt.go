package service

import (
	"fmt"
	"strings"
)

// GenerationInput carries the user-driven context for both generation
// phases. Free text may be empty only when a category or quick action is
// selected.
type GenerationInput struct {
	FreeText    string `json:"free_text"`
	Category    string `json:"category"`
	QuickAction string `json:"quick_action"`
	Vegetarian  bool   `json:"vegetarian"`
}

// Empty reports whether the input carries nothing to generate from.
func (in GenerationInput) Empty() bool {
	return strings.TrimSpace(in.FreeText) == "" && in.Category == "" && in.QuickAction == ""
}

func dietaryClause(vegetarian bool) string {
	if vegetarian {
		return "The recipe must be strictly vegetarian: no meat, fish, poultry or eggs."
	}
	return "There is no dietary restriction."
}

const candidateInstructions = `Respond with a fenced json code block containing an array of exactly 3 JSON objects.
Each object must have the fields:
- "recipeName": the recipe name, suffixed with a single fitting emoji
- "description": a two-sentence description
- "ingredients": an array of ingredient name strings (no quantities)`

// buildCandidatePrompt assembles the phase-1 prompt from free text,
// category, quick action and the dietary clause.
func buildCandidatePrompt(in GenerationInput) string {
	var parts []string
	parts = append(parts, "Suggest recipe ideas for the following request.")
	if text := strings.TrimSpace(in.FreeText); text != "" {
		parts = append(parts, "Request: "+text)
	}
	if in.Category != "" {
		parts = append(parts, "Category: "+in.Category)
	}
	if in.QuickAction != "" {
		parts = append(parts, "Style: "+in.QuickAction)
	}
	parts = append(parts, dietaryClause(in.Vegetarian))
	parts = append(parts, candidateInstructions)
	return strings.Join(parts, "\n")
}

const fullRecipeInstructions = `Respond with a fenced json code block containing one JSON object with the fields:
- "ingredients": array of objects {"ingredient": string, "quantity": string, "icon": string emoji}
- "steps": array of instruction strings in order
- "calories": integer estimate
- "cookTime": cook time in minutes, integer
- "serveTo": number of servings, integer
- "imagePrompt": a short scene description for generating a photo of the finished dish
- "category": one word category for the recipe`

// buildFullRecipePrompt assembles the phase-2 prompt seeded with the chosen
// candidate and the original context.
func buildFullRecipePrompt(candidate RecipeCandidate, in GenerationInput) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Write the complete recipe for %q.", candidate.RecipeName))
	if candidate.Description != "" {
		parts = append(parts, "Summary: "+candidate.Description)
	}
	if text := strings.TrimSpace(in.FreeText); text != "" {
		parts = append(parts, "Original request: "+text)
	}
	if in.Category != "" {
		parts = append(parts, "Category: "+in.Category)
	}
	if in.QuickAction != "" {
		parts = append(parts, "Style: "+in.QuickAction)
	}
	parts = append(parts, dietaryClause(in.Vegetarian))
	parts = append(parts, fullRecipeInstructions)
	return strings.Join(parts, "\n")
}

// vegetarianImageQualifier is appended to image prompts in vegetarian mode.
const vegetarianImageQualifier = ", vegetarian dish, no meat or fish visible"
