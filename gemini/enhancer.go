// Package gemini implements deepresearch.Enhancer using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/deepresearch"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Enhancer implements deepresearch.Enhancer at compile time.
var _ deepresearch.Enhancer = (*Enhancer)(nil)

// Enhancer implements deepresearch.Enhancer using Google Gemini.
type Enhancer struct {
	client *genai.Client
	model  string
}

// NewEnhancer creates a new Enhancer. An empty model uses DefaultModel.
func NewEnhancer(client *genai.Client, model string) *Enhancer {
	if model == "" {
		model = DefaultModel
	}
	return &Enhancer{client: client, model: model}
}

// Enhance asks Gemini for refined fields describing text.
func (e *Enhancer) Enhance(ctx context.Context, text, sourceURL string) (*deepresearch.Enhancement, error) {
	if e.client == nil {
		return nil, deepresearch.Errorf(deepresearch.EINVALID, "gemini client not configured")
	}
	if text == "" {
		return nil, deepresearch.Errorf(deepresearch.EINVALID, "text required")
	}

	prompt := deepresearch.BuildEnhancementPrompt(text, sourceURL)

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, deepresearch.Errorf(deepresearch.EINTERNAL, "gemini returned nil result")
	}

	raw := result.Text()
	if raw == "" {
		return nil, deepresearch.Errorf(deepresearch.EINVALID, "gemini returned no text")
	}

	return deepresearch.ParseEnhancement(raw)
}

// BuildConfig returns the GenerateContentConfig for enhancement calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You catalogue AI research conversations for a searchable archive. Describe the conversation faithfully and concisely.",
			}},
		},
		Temperature:      &temp,
		MaxOutputTokens:  1000,
		ResponseMIMEType: "application/json",
	}
}
