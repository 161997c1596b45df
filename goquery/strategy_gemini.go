package goquery

import "github.com/PuerkitoBio/goquery"

var _ Strategy = (*GeminiStrategy)(nil)

// GeminiStrategy extracts shared Gemini conversations, which render turns
// as custom elements.
type GeminiStrategy struct{}

// NewGeminiStrategy creates a new GeminiStrategy.
func NewGeminiStrategy() *GeminiStrategy {
	return &GeminiStrategy{}
}

// Name returns the strategy's identifier.
func (s *GeminiStrategy) Name() string {
	return "gemini"
}

// Extract returns the conversation text.
func (s *GeminiStrategy) Extract(doc *goquery.Document, maxLength int) (string, string) {
	return ExtractWithSelectors(doc, []string{
		".conversation-container",
		"user-query, message-content",
		"message-content",
		".model-response-text",
		".query-text",
	}, maxLength)
}
