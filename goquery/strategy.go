package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/deepresearch"
)

// Strategy extracts body text from a parsed conversation page.
type Strategy interface {
	// Name identifies the strategy in record metadata.
	Name() string

	// Extract returns the normalized content and the selector that produced
	// it. An empty content means no selector yielded enough text.
	Extract(doc *goquery.Document, maxLength int) (content, selector string)
}

// ExtractWithSelectors tries selectors in order and returns the text of the
// first one whose matched elements together hold at least
// deepresearch.MinContentLength characters. The text of every element
// matched by a selector is joined before measuring.
func ExtractWithSelectors(doc *goquery.Document, selectors []string, maxLength int) (content, selector string) {
	for _, s := range selectors {
		text := selectionText(doc.Find(s), maxLength)
		if deepresearch.RuneLen(text) >= deepresearch.MinContentLength {
			return text, s
		}
	}
	return "", ""
}

// selectionText joins the text of all elements in sel and normalizes it.
func selectionText(sel *goquery.Selection, maxLength int) string {
	if sel.Length() == 0 {
		return ""
	}
	parts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	return deepresearch.Normalize(strings.Join(parts, " "), maxLength)
}
