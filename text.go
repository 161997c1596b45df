package deepresearch

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize collapses every run of whitespace (including line breaks) into a
// single space, trims the result, and truncates it to at most max runes.
// A max of zero or less disables truncation. Normalize is idempotent.
func Normalize(text string, max int) string {
	return Truncate(strings.Join(strings.Fields(text), " "), max)
}

// Truncate shortens s to at most max runes, trimming any whitespace left at
// the cut. A max of zero or less returns s unchanged.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max]))
}

// RuneLen returns the number of characters in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Keyword limits used by the ingestion pipeline.
const (
	DefaultKeywordLimit  = 10
	FallbackKeywordLimit = 15
)

// stopWords are discarded by ExtractKeywords regardless of length.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "up", "about", "into", "through", "during",
		"before", "after", "above", "below", "between", "under", "again",
		"further", "then", "once", "is", "are", "was", "were", "been", "be",
		"have", "has", "had", "do", "does", "did", "will", "would", "should",
		"could", "may", "might", "must", "shall", "can", "need", "ought",
		"this", "that", "these", "those", "they", "them", "their", "there",
		"what", "which", "who", "whom", "your", "yours", "here", "where",
		"when", "also", "than", "just", "very", "some", "such", "only",
	} {
		stopWords[w] = struct{}{}
	}
}

// ExtractKeywords returns up to limit distinct keywords from text, ranked by
// descending frequency with ties kept in first-encountered order.
// Tokens of three characters or fewer and stop words are discarded.
func ExtractKeywords(text string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		}
		return -1
	}, text)

	counts := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(word) <= 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
