package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{
			name: "fenced json block",
			text: "Here you go:\n```json\n{\"a\": 1}\n```\nEnjoy!",
			want: `{"a": 1}`,
		},
		{
			name: "fence without language tag",
			text: "```\n[1, 2, 3]\n```",
			want: `[1, 2, 3]`,
		},
		{
			name: "bare object",
			text: `  {"a": 1}  `,
			want: `{"a": 1}`,
		},
		{
			name: "bare array",
			text: `[{"a": 1}]`,
			want: `[{"a": 1}]`,
		},
		{
			name:    "prose only",
			text:    "Sorry, I cannot help with that.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONBlock(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCandidates(t *testing.T) {
	content := "```json\n" + `[
		{"recipeName": "Paneer Tikka 🧀", "description": "Grilled paneer.", "ingredients": ["paneer", "yogurt"]},
		{"recipeName": "Dal Makhani 🍛", "description": "Creamy lentils.", "ingredients": ["lentils", "butter"]},
		{"recipeName": "Veg Biryani 🍚", "description": "Fragrant rice.", "ingredients": ["rice", "vegetables"]}
	]` + "\n```"

	candidates, err := parseCandidates(content)
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "Paneer Tikka 🧀", candidates[0].RecipeName)
	assert.Equal(t, []string{"paneer", "yogurt"}, candidates[0].Ingredients)
}

func TestParseCandidatesWrappedInObject(t *testing.T) {
	content := `{"recipes": [{"recipeName": "Soup 🍲", "description": "Warm.", "ingredients": ["carrot"]}]}`

	candidates, err := parseCandidates(content)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Soup 🍲", candidates[0].RecipeName)
}

func TestParseCandidatesMalformed(t *testing.T) {
	_, err := parseCandidates("```json\n{\"recipeName\": \"not an array\"}\n```")
	assert.Error(t, err)

	_, err = parseCandidates("no json here at all")
	assert.Error(t, err)

	_, err = parseCandidates("```json\n[]\n```")
	assert.Error(t, err)
}

func TestParseFullRecipe(t *testing.T) {
	content := "```json\n" + `{
		"ingredients": [{"ingredient": "Paneer", "quantity": "200 g", "icon": "🧀"}],
		"steps": ["Cube the paneer.", "Grill until golden."],
		"calories": 450,
		"cookTime": 30,
		"serveTo": 2,
		"imagePrompt": "Grilled paneer skewers on a plate",
		"category": "Dinner"
	}` + "\n```"

	recipe, err := parseFullRecipe(content)
	require.NoError(t, err)
	assert.Equal(t, "Paneer", recipe.Ingredients[0].Ingredient)
	assert.Equal(t, "200 g", recipe.Ingredients[0].Quantity)
	assert.Len(t, recipe.Steps, 2)
	assert.Equal(t, FlexInt(450), recipe.Calories)
	assert.Equal(t, FlexInt(30), recipe.CookTime)
	assert.Equal(t, FlexInt(2), recipe.ServeTo)
	assert.Equal(t, "Dinner", recipe.Category)
}

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    FlexInt
		wantErr bool
	}{
		{name: "integer", payload: `42`, want: 42},
		{name: "float truncates", payload: `42.7`, want: 42},
		{name: "numeric string", payload: `"42"`, want: 42},
		{name: "string with unit", payload: `"45 minutes"`, want: 45},
		{name: "null keeps zero", payload: `null`, want: 0},
		{name: "empty string", payload: `""`, wantErr: true},
		{name: "no digits", payload: `"soon"`, wantErr: true},
		{name: "object", payload: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.payload), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}
