package goquery

import "github.com/PuerkitoBio/goquery"

var _ Strategy = (*GenericStrategy)(nil)

// genericSelectors are content regions shared across most sites, tried in
// order before the page body.
var genericSelectors = []string{
	"main",
	"article",
	"[role='main']",
	".content",
	"#content",
	".conversation",
	".chat-messages",
	".post-content",
	".entry-content",
}

// GenericStrategy extracts content using universal content-region selectors
// that work on any page. When no region holds enough text it returns the
// whole body, whatever its length.
type GenericStrategy struct{}

// NewGenericStrategy creates a new GenericStrategy.
func NewGenericStrategy() *GenericStrategy {
	return &GenericStrategy{}
}

// Name returns the strategy's identifier.
func (s *GenericStrategy) Name() string {
	return "generic"
}

// Extract returns the first sufficient content region, else the body text.
//
// Selector order:
//   - main, article, [role='main']
//   - .content, #content
//   - .conversation, .chat-messages
//   - .post-content, .entry-content
//   - body
func (s *GenericStrategy) Extract(doc *goquery.Document, maxLength int) (string, string) {
	if content, selector := ExtractWithSelectors(doc, genericSelectors, maxLength); content != "" {
		return content, selector
	}
	if content := selectionText(doc.Find("body"), maxLength); content != "" {
		return content, "body"
	}
	return "", ""
}
