package goquery

import "github.com/PuerkitoBio/goquery"

var _ Strategy = (*GrokStrategy)(nil)

// GrokStrategy extracts shared Grok conversations.
type GrokStrategy struct{}

// NewGrokStrategy creates a new GrokStrategy.
func NewGrokStrategy() *GrokStrategy {
	return &GrokStrategy{}
}

// Name returns the strategy's identifier.
func (s *GrokStrategy) Name() string {
	return "grok"
}

// Extract returns the conversation text.
func (s *GrokStrategy) Extract(doc *goquery.Document, maxLength int) (string, string) {
	return ExtractWithSelectors(doc, []string{
		".message-bubble",
		".response-content-markdown",
		"[data-testid='conversation']",
	}, maxLength)
}
