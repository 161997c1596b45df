package deepresearch

import (
	"sort"
	"strings"
)

// Search limits.
const (
	MinQueryLength     = 2
	DefaultSearchLimit = 20
)

// Weights is the table of points awarded per field match.
type Weights struct {
	TitlePhrase       int `json:"titlePhrase" yaml:"title_phrase"`
	TitleWord         int `json:"titleWord" yaml:"title_word"`
	DescriptionPhrase int `json:"descriptionPhrase" yaml:"description_phrase"`
	DescriptionWord   int `json:"descriptionWord" yaml:"description_word"`
	ContentWord       int `json:"contentWord" yaml:"content_word"`
	TagPhrase         int `json:"tagPhrase" yaml:"tag_phrase"`
	TagWord           int `json:"tagWord" yaml:"tag_word"`
	Provider          int `json:"provider" yaml:"provider"`
}

// DefaultWeights returns the standard weight table. Title matches outweigh
// description, tag and content matches, in that order.
func DefaultWeights() Weights {
	return Weights{
		TitlePhrase:       10,
		TitleWord:         3,
		DescriptionPhrase: 5,
		DescriptionWord:   2,
		ContentWord:       1,
		TagPhrase:         4,
		TagWord:           2,
		Provider:          3,
	}
}

// Validate returns an error if any weight is negative.
func (w Weights) Validate() error {
	for name, v := range map[string]int{
		"title phrase":       w.TitlePhrase,
		"title word":         w.TitleWord,
		"description phrase": w.DescriptionPhrase,
		"description word":   w.DescriptionWord,
		"content word":       w.ContentWord,
		"tag phrase":         w.TagPhrase,
		"tag word":           w.TagWord,
		"provider":           w.Provider,
	} {
		if v < 0 {
			return Errorf(EINVALID, "%s weight must not be negative", name)
		}
	}
	return nil
}

// SearchOptions configures a search.
type SearchOptions struct {
	// Provider restricts candidates before scoring. Empty means all.
	Provider Provider `json:"provider,omitempty"`

	// Limit caps the returned results. Zero means DefaultSearchLimit.
	Limit int `json:"limit,omitempty"`
}

// SearchResult pairs a record with its relevance score.
type SearchResult struct {
	Research *Research `json:"research"`
	Score    int       `json:"score"`
}

// SearchResponse is the outcome of Search.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`

	// Total counts every positive-score match before Limit is applied.
	Total int `json:"totalResults"`
}

// Scorer ranks records against a free-text query using a weight table.
// The full candidate set is rescored on every query.
type Scorer struct {
	Weights Weights
}

// NewScorer returns a Scorer using DefaultWeights.
func NewScorer() *Scorer {
	return &Scorer{Weights: DefaultWeights()}
}

// query is a lowercased phrase plus its scoring words.
type query struct {
	phrase string
	words  []string
}

func parseQuery(q string) query {
	phrase := strings.ToLower(strings.TrimSpace(q))
	var words []string
	for _, w := range strings.Fields(phrase) {
		if RuneLen(w) > 2 {
			words = append(words, w)
		}
	}
	return query{phrase: phrase, words: words}
}

// Score returns the relevance of r to q. Zero means no relevance.
func (s *Scorer) Score(q string, r *Research) int {
	return s.score(parseQuery(q), r)
}

func (s *Scorer) score(q query, r *Research) int {
	w := s.Weights
	score := 0

	title := strings.ToLower(r.Title)
	if strings.Contains(title, q.phrase) {
		score += w.TitlePhrase
	}
	score += w.TitleWord * countWords(title, q.words)

	if r.Description != "" {
		desc := strings.ToLower(r.Description)
		if strings.Contains(desc, q.phrase) {
			score += w.DescriptionPhrase
		}
		score += w.DescriptionWord * countWords(desc, q.words)
	}

	if r.Content != "" {
		score += w.ContentWord * countWords(strings.ToLower(r.Content), q.words)
	}

	for _, tag := range r.Tags {
		tag = strings.ToLower(tag)
		if strings.Contains(tag, q.phrase) {
			score += w.TagPhrase
		}
		score += w.TagWord * countWords(tag, q.words)
	}

	if r.Provider != "" && strings.Contains(q.phrase, strings.ToLower(string(r.Provider))) {
		score += w.Provider
	}

	return score
}

// countWords returns how many query words occur in text.
func countWords(text string, words []string) int {
	n := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			n++
		}
	}
	return n
}

// Search scores every candidate, drops those scoring zero, and returns the
// rest ordered by descending score. Equal scores keep candidate order.
// Queries shorter than MinQueryLength are rejected before scoring.
func (s *Scorer) Search(q string, candidates []*Research, opts SearchOptions) (*SearchResponse, error) {
	parsed := parseQuery(q)
	if RuneLen(parsed.phrase) < MinQueryLength {
		return nil, Errorf(EINVALID, "search query must be at least %d characters", MinQueryLength)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	results := make([]SearchResult, 0)
	for _, r := range candidates {
		if opts.Provider != "" && r.Provider != opts.Provider {
			continue
		}
		if score := s.score(parsed, r); score > 0 {
			results = append(results, SearchResult{Research: r, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	total := len(results)
	if len(results) > limit {
		results = results[:limit]
	}

	return &SearchResponse{
		Query:   strings.TrimSpace(q),
		Results: results,
		Total:   total,
	}, nil
}
