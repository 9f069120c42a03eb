package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ZaguanLabs/lexiloc"
	"github.com/sashabaranov/go-openai"
)

// OpenAIFiller implements GapFiller using OpenAI's API. It translates the
// short, self-contained phrases (item names, proper nouns) that the target
// dictionary lacks; everything covered by the dictionary never touches it.
type OpenAIFiller struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI gap filler.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.2)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIFiller creates a new OpenAI gap filler.
func NewOpenAIFiller(cfg OpenAIConfig) *OpenAIFiller {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	return &OpenAIFiller{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Fill translates a batch of phrases using OpenAI.
func (p *OpenAIFiller) Fill(ctx context.Context, req FillRequest) ([]string, error) {
	if len(req.Phrases) == 0 {
		return []string{}, nil
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: p.buildUserMessage(req)},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &lexiloc.FillError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &lexiloc.FillError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return ParseFillResponse(resp.Choices[0].Message.Content, len(req.Phrases))
}

func (p *OpenAIFiller) buildSystemPrompt(req FillRequest) string {
	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = "en"
	}
	targetName := lexiloc.DisplayName(req.TargetLang)

	return fmt.Sprintf(`You are a game-glossary translator. The inputs are short %s phrases: item names, faction names, location names. Translate each into the established %s term used by the game's community, or a faithful rendering when no established term exists.

Rules:
- Keep proper-noun capitalization conventions of the target language.
- Never add explanations, punctuation, or quotation marks around a phrase.
- Preserve digits and embedded codes exactly.

Return a valid JSON object with a single key "translations" containing an array of strings in the exact same order as the input.
Example: { "translations": ["phrase 1", "phrase 2"] }`, sourceLang, targetName)
}

func (p *OpenAIFiller) buildUserMessage(req FillRequest) string {
	data, _ := json.Marshal(req.Phrases)
	return string(data)
}

// ParseFillResponse extracts the translation array from a model response.
// Accepts either {"translations": [...]} or a bare JSON array.
func ParseFillResponse(content string, expectedCount int) ([]string, error) {
	var objResult map[string]interface{}
	if err := json.Unmarshal([]byte(content), &objResult); err == nil {
		if translations, ok := objResult["translations"]; ok {
			if arr, ok := translations.([]interface{}); ok {
				return toStringSlice(arr, expectedCount)
			}
		}

		// Fallback: find first array value
		for _, v := range objResult {
			if arr, ok := v.([]interface{}); ok {
				return toStringSlice(arr, expectedCount)
			}
		}
	}

	var arrResult []interface{}
	if err := json.Unmarshal([]byte(content), &arrResult); err == nil {
		return toStringSlice(arrResult, expectedCount)
	}

	return nil, &lexiloc.FillError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func toStringSlice(arr []interface{}, expectedCount int) ([]string, error) {
	result := make([]string, len(arr))
	for i, v := range arr {
		if s, ok := v.(string); ok {
			result[i] = s
		} else {
			result[i] = fmt.Sprintf("%v", v)
		}
	}

	if len(result) != expectedCount {
		return nil, &lexiloc.CountMismatchError{
			Expected: expectedCount,
			Got:      len(result),
		}
	}

	return result, nil
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIFiller implements GapFiller
var _ GapFiller = (*OpenAIFiller)(nil)
