package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/deepresearch"
)

var _ deepresearch.Extractor = (*Registry)(nil)

// Metadata keys set on every ExtractResult.
const (
	MetaExtractor = "extractor"
	MetaSelector  = "selector"
	MetaFallback  = "fallback"
)

// Registry maps providers to extraction strategies and falls back to a
// generic strategy when the provider has none registered or its strategy
// finds too little content.
type Registry struct {
	generic    Strategy
	strategies map[deepresearch.Provider]Strategy
	maxLength  int
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMaxLength sets the maximum content length in characters.
// Zero or negative disables the bound.
func WithMaxLength(n int) RegistryOption {
	return func(r *Registry) {
		r.maxLength = n
	}
}

// NewRegistry creates a Registry with the given generic strategy and no
// provider strategies.
func NewRegistry(generic Strategy, opts ...RegistryOption) *Registry {
	r := &Registry{
		generic:    generic,
		strategies: make(map[deepresearch.Provider]Strategy),
		maxLength:  deepresearch.MaxContentLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefaultRegistry creates a Registry with a strategy for every known
// provider.
func NewDefaultRegistry(opts ...RegistryOption) *Registry {
	r := NewRegistry(NewGenericStrategy(), opts...)
	r.Register(deepresearch.ProviderClaude, NewClaudeStrategy())
	r.Register(deepresearch.ProviderChatGPT, NewChatGPTStrategy())
	r.Register(deepresearch.ProviderGemini, NewGeminiStrategy())
	r.Register(deepresearch.ProviderGrok, NewGrokStrategy())
	r.Register(deepresearch.ProviderPerplexity, NewPerplexityStrategy())
	return r
}

// Get returns the strategy for a provider, or nil if none is registered.
func (r *Registry) Get(provider deepresearch.Provider) Strategy {
	return r.strategies[provider]
}

// Register adds a strategy for a provider, replacing any existing one.
func (r *Registry) Register(provider deepresearch.Provider, strategy Strategy) {
	r.strategies[provider] = strategy
}

// List returns all providers with a registered strategy.
func (r *Registry) List() []deepresearch.Provider {
	providers := make([]deepresearch.Provider, 0, len(r.strategies))
	for p := range r.strategies {
		providers = append(providers, p)
	}
	return providers
}

// Extract runs the provider's strategy and falls back to the generic
// strategy when it yields nothing.
func (r *Registry) Extract(html string, provider deepresearch.Provider) (*deepresearch.ExtractResult, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	if s, ok := r.strategies[provider]; ok {
		if content, selector := s.Extract(doc, r.maxLength); content != "" {
			return r.result(doc, provider, content, s.Name(), selector, false), nil
		}
	}

	return r.extractGeneric(doc, provider), nil
}

// ExtractGeneric runs only the generic strategy.
func (r *Registry) ExtractGeneric(html string, provider deepresearch.Provider) (*deepresearch.ExtractResult, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	return r.extractGeneric(doc, provider), nil
}

func (r *Registry) extractGeneric(doc *goquery.Document, provider deepresearch.Provider) *deepresearch.ExtractResult {
	content, selector := r.generic.Extract(doc, r.maxLength)
	return r.result(doc, provider, content, r.generic.Name(), selector, true)
}

func (r *Registry) result(doc *goquery.Document, provider deepresearch.Provider, content, name, selector string, fallback bool) *deepresearch.ExtractResult {
	title := deepresearch.Normalize(doc.Find("title").First().Text(), deepresearch.MaxTitleLength)
	if title == "" {
		title = provider.DefaultTitle()
	}

	desc, _ := doc.Find("meta[name='description']").First().Attr("content")

	return &deepresearch.ExtractResult{
		Title:       title,
		Content:     content,
		Description: deepresearch.Normalize(desc, deepresearch.MaxDescriptionLength),
		Metadata: map[string]any{
			MetaExtractor: name,
			MetaSelector:  selector,
			MetaFallback:  fallback,
		},
	}
}

// parse builds a document with script, style and noscript elements removed
// so their text never reaches the content.
func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, deepresearch.Errorf(deepresearch.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find("script, style, noscript, template").Remove()
	return doc, nil
}
