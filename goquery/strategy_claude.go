package goquery

import "github.com/PuerkitoBio/goquery"

var _ Strategy = (*ClaudeStrategy)(nil)

// ClaudeStrategy extracts shared Claude conversations.
//
// It targets the message containers of the claude.ai share view:
// - .font-claude-message for assistant turns
// - [data-testid='user-message'] for user turns
// - div.prose for rendered markdown
type ClaudeStrategy struct{}

// NewClaudeStrategy creates a new ClaudeStrategy.
func NewClaudeStrategy() *ClaudeStrategy {
	return &ClaudeStrategy{}
}

// Name returns the strategy's identifier.
func (s *ClaudeStrategy) Name() string {
	return "claude"
}

// Extract returns the conversation text.
func (s *ClaudeStrategy) Extract(doc *goquery.Document, maxLength int) (string, string) {
	return ExtractWithSelectors(doc, []string{
		"[data-testid='conversation']",
		".font-claude-message, [data-testid='user-message']",
		".font-claude-message",
		"div.prose",
	}, maxLength)
}
