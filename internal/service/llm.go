package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/platefull/backend/config"
)

// RecipeCandidate is the lightweight phase-1 result. Candidates are never
// persisted; one of them is promoted to a full recipe by phase 2.
type RecipeCandidate struct {
	RecipeName  string   `json:"recipeName"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
}

// GeneratedRecipe is the phase-2 wire shape returned by the model.
type GeneratedRecipe struct {
	Ingredients []GeneratedIngredient `json:"ingredients"`
	Steps       []string              `json:"steps"`
	Calories    FlexInt               `json:"calories"`
	CookTime    FlexInt               `json:"cookTime"`
	ServeTo     FlexInt               `json:"serveTo"`
	ImagePrompt string                `json:"imagePrompt"`
	Category    string                `json:"category"`
}

// FlexInt handles numeric fields the model sometimes returns as floats or
// strings ("45 minutes" style values keep only the leading digits).
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexInt(int(num))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		digits := strings.TrimSpace(str)
		end := 0
		for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
			end++
		}
		if end == 0 {
			return fmt.Errorf("invalid numeric value %q", str)
		}
		n := 0
		for _, c := range digits[:end] {
			n = n*10 + int(c-'0')
		}
		*f = FlexInt(n)
		return nil
	}

	return fmt.Errorf("invalid numeric format")
}

// GeneratedIngredient mirrors the model's ingredient object fields.
type GeneratedIngredient struct {
	Ingredient string `json:"ingredient"`
	Quantity   string `json:"quantity"`
	Icon       string `json:"icon"`
}

// LLMService talks to the hosted chat-completions API.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	log    *zap.Logger
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg *config.Config, log *zap.Logger) (*LLMService, error) {
	if cfg.LLM.APIKey == "" && !config.IsTest() {
		return nil, fmt.Errorf("LLM API key must be set")
	}

	return &LLMService{
		apiKey: cfg.LLM.APIKey,
		apiURL: cfg.LLM.APIURL,
		model:  cfg.LLM.Model,
		client: &http.Client{Timeout: cfg.LLM.Timeout},
		log:    log,
	}, nil
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat-completions request
type Request struct {
	Model            string    `json:"model"`
	Messages         []Message `json:"messages"`
	Temperature      float64   `json:"temperature"`
	TopP             float64   `json:"top_p"`
	FrequencyPenalty float64   `json:"frequency_penalty"`
	PresencePenalty  float64   `json:"presence_penalty"`
}

const systemPrompt = "You are a professional chef. Always answer with a fenced json code block in exactly the shape the user asks for, with no text outside the block."

// Complete sends a single prompt and returns the raw response content.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := Request{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:      0.9,
		TopP:             0.9,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.5,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.log.Error("LLM request failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return "", fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}

var fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSONBlock returns the contents of the first fenced json block in
// text. When no fence is present the trimmed text is returned as-is, since
// some models answer with bare JSON despite the instruction.
func ExtractJSONBlock(text string) (string, error) {
	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), nil
	}
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return trimmed, nil
	}
	return "", fmt.Errorf("no JSON block found in response")
}

// parseCandidates decodes the phase-1 response into candidates.
func parseCandidates(content string) ([]RecipeCandidate, error) {
	block, err := ExtractJSONBlock(content)
	if err != nil {
		return nil, err
	}

	var candidates []RecipeCandidate
	if err := json.Unmarshal([]byte(block), &candidates); err != nil {
		// some models wrap the array in an object
		var wrapper struct {
			Recipes []RecipeCandidate `json:"recipes"`
		}
		if werr := json.Unmarshal([]byte(block), &wrapper); werr != nil || len(wrapper.Recipes) == 0 {
			return nil, fmt.Errorf("failed to parse candidates: %w", err)
		}
		candidates = wrapper.Recipes
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("empty candidate list")
	}
	return candidates, nil
}

// parseFullRecipe decodes the phase-2 response.
func parseFullRecipe(content string) (*GeneratedRecipe, error) {
	block, err := ExtractJSONBlock(content)
	if err != nil {
		return nil, err
	}

	var recipe GeneratedRecipe
	if err := json.Unmarshal([]byte(block), &recipe); err != nil {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	return &recipe, nil
}
