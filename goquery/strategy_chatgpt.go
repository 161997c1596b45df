package goquery

import "github.com/PuerkitoBio/goquery"

var _ Strategy = (*ChatGPTStrategy)(nil)

// ChatGPTStrategy extracts shared ChatGPT conversations. Turns carry a
// data-message-author-role attribute on both chat.openai.com and
// chatgpt.com share pages.
type ChatGPTStrategy struct{}

// NewChatGPTStrategy creates a new ChatGPTStrategy.
func NewChatGPTStrategy() *ChatGPTStrategy {
	return &ChatGPTStrategy{}
}

// Name returns the strategy's identifier.
func (s *ChatGPTStrategy) Name() string {
	return "chatgpt"
}

// Extract returns the conversation text.
func (s *ChatGPTStrategy) Extract(doc *goquery.Document, maxLength int) (string, string) {
	return ExtractWithSelectors(doc, []string{
		"[data-message-author-role]",
		"article[data-testid^='conversation-turn']",
		".markdown",
	}, maxLength)
}
