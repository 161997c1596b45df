package goquery

import "github.com/PuerkitoBio/goquery"

var _ Strategy = (*PerplexityStrategy)(nil)

// PerplexityStrategy extracts Perplexity search threads. The answer block
// comes first, followed by the prose and word-wrapped text regions.
type PerplexityStrategy struct{}

// NewPerplexityStrategy creates a new PerplexityStrategy.
func NewPerplexityStrategy() *PerplexityStrategy {
	return &PerplexityStrategy{}
}

// Name returns the strategy's identifier.
func (s *PerplexityStrategy) Name() string {
	return "perplexity"
}

// Extract returns the thread text.
func (s *PerplexityStrategy) Extract(doc *goquery.Document, maxLength int) (string, string) {
	return ExtractWithSelectors(doc, []string{
		"[data-testid='answer']",
		".prose",
		".break-words",
	}, maxLength)
}
