package deepresearch

// MinContentLength is the shortest extracted body accepted from a
// provider-specific selector before falling back to generic extraction.
const MinContentLength = 100

// ExtractResult holds the fields extracted from a fetched page.
type ExtractResult struct {
	// Title comes from the page <title> or the provider placeholder.
	Title string

	// Content is the normalized, length-bounded body text.
	Content string

	// Description comes from the meta description tag, possibly empty.
	Description string

	// Metadata records how the content was found (strategy, selector).
	Metadata map[string]any
}

// Extractor turns fetched HTML into structured fields.
type Extractor interface {
	// Extract tries the provider's selectors first and falls back to
	// generic extraction when none yields enough content.
	Extract(html string, provider Provider) (*ExtractResult, error)

	// ExtractGeneric runs only the generic content-region selectors,
	// ending with the whole page body.
	ExtractGeneric(html string, provider Provider) (*ExtractResult, error)
}
