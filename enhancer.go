package deepresearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// EnhanceInputLength bounds the text sent to an Enhancer.
const EnhanceInputLength = 8000

// Enhancement holds AI-refined fields for a record.
type Enhancement struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Summary     string   `json:"summary"`
	Keywords    []string `json:"keywords"`
	Category    Category `json:"category"`
}

// Enhancer produces refined fields from raw extracted text.
// Any error means "no enhancement available"; callers must never fail
// ingestion because of it.
type Enhancer interface {
	Enhance(ctx context.Context, text, sourceURL string) (*Enhancement, error)
}

// Clamp bounds every field to its maximum length and maps the category
// onto the closed set. It is safe to call more than once.
func (e *Enhancement) Clamp() {
	e.Title = Normalize(e.Title, MaxTitleLength)
	e.Description = Normalize(e.Description, MaxDescriptionLength)
	e.Summary = Normalize(e.Summary, MaxSummaryLength)
	if e.Summary == "" {
		e.Summary = e.Description
	}
	if len(e.Keywords) > DefaultKeywordLimit {
		e.Keywords = e.Keywords[:DefaultKeywordLimit]
	}
	e.Category = ParseCategory(string(e.Category))
}

// BuildEnhancementPrompt builds the instruction sent to an LLM enhancer.
func BuildEnhancementPrompt(content, sourceURL string) string {
	ellipsis := ""
	if RuneLen(content) > EnhanceInputLength {
		content = Truncate(content, EnhanceInputLength)
		ellipsis = " ..."
	}

	categories := make([]string, len(Categories))
	for i, c := range Categories {
		categories[i] = fmt.Sprintf("%q", c)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Please analyze this research content and extract structured information. The content comes from: %s\n\n", sourceURL)
	fmt.Fprintf(&sb, "Content:\n%s%s\n\n", content, ellipsis)
	sb.WriteString("Please provide a JSON response with:\n")
	fmt.Fprintf(&sb, "1. \"title\": A concise, descriptive title (max %d chars)\n", MaxTitleLength)
	fmt.Fprintf(&sb, "2. \"description\": A 2-3 sentence summary (max %d chars)\n", MaxDescriptionLength)
	fmt.Fprintf(&sb, "3. \"summary\": A detailed summary of the key findings (max %d chars)\n", MaxSummaryLength)
	fmt.Fprintf(&sb, "4. \"keywords\": Array of 5-%d relevant keywords/topics\n", DefaultKeywordLimit)
	fmt.Fprintf(&sb, "5. \"category\": One category from: [%s]\n\n", strings.Join(categories, ", "))
	sb.WriteString("Respond with valid JSON only.")
	return sb.String()
}

// ParseEnhancement decodes an LLM response into a clamped Enhancement.
// Markdown code fences around the JSON are tolerated. A response missing
// title, description or keywords is rejected.
func ParseEnhancement(raw string) (*Enhancement, error) {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")
	body = strings.TrimSpace(body)

	var payload struct {
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Summary     string          `json:"summary"`
		Keywords    json.RawMessage `json:"keywords"`
		Category    string          `json:"category"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, Errorf(EINVALID, "enhancement response is not valid JSON: %v", err)
	}

	var keywords []string
	if len(payload.Keywords) == 0 || json.Unmarshal(payload.Keywords, &keywords) != nil || keywords == nil {
		return nil, Errorf(EINVALID, "enhancement response keywords must be an array of strings")
	}
	if strings.TrimSpace(payload.Title) == "" || strings.TrimSpace(payload.Description) == "" {
		return nil, Errorf(EINVALID, "enhancement response missing title or description")
	}

	e := &Enhancement{
		Title:       payload.Title,
		Description: payload.Description,
		Summary:     payload.Summary,
		Keywords:    keywords,
		Category:    Category(payload.Category),
	}
	e.Clamp()
	return e, nil
}
