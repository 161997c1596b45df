// Package anthropic implements deepresearch.Enhancer using the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/deepresearch"
)

// Defaults for enhancement requests.
const (
	DefaultModel     = "claude-3-haiku-20240307"
	DefaultMaxTokens = 1000
)

// Ensure Enhancer implements deepresearch.Enhancer at compile time.
var _ deepresearch.Enhancer = (*Enhancer)(nil)

// Enhancer implements deepresearch.Enhancer using Claude.
type Enhancer struct {
	client    sdk.Client
	apiKey    string
	model     string
	maxTokens int64
	reqOpts   []option.RequestOption
}

// Option configures an Enhancer.
type Option func(*Enhancer)

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(e *Enhancer) {
		e.model = model
	}
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) Option {
	return func(e *Enhancer) {
		e.reqOpts = append(e.reqOpts, option.WithBaseURL(url))
	}
}

// WithMaxRetries sets how many times a failed request is retried.
func WithMaxRetries(n int) Option {
	return func(e *Enhancer) {
		e.reqOpts = append(e.reqOpts, option.WithMaxRetries(n))
	}
}

// NewEnhancer creates an Enhancer authenticated with apiKey.
func NewEnhancer(apiKey string, opts ...Option) *Enhancer {
	e := &Enhancer{
		apiKey:    apiKey,
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.client = sdk.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, e.reqOpts...)...)
	return e
}

// Enhance asks Claude for refined fields describing text. Responses whose
// first content block is not text are rejected.
func (e *Enhancer) Enhance(ctx context.Context, text, sourceURL string) (*deepresearch.Enhancement, error) {
	if e.apiKey == "" {
		return nil, deepresearch.Errorf(deepresearch.EINVALID, "anthropic API key not configured")
	}
	if text == "" {
		return nil, deepresearch.Errorf(deepresearch.EINVALID, "text required")
	}

	msg, err := e.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(e.model),
		MaxTokens: e.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(deepresearch.BuildEnhancementPrompt(text, sourceURL))),
		},
	})
	if err != nil {
		return nil, err
	}

	if len(msg.Content) == 0 {
		return nil, deepresearch.Errorf(deepresearch.EINVALID, "anthropic returned no content")
	}
	first := msg.Content[0]
	if first.Type != "text" || strings.TrimSpace(first.Text) == "" {
		return nil, deepresearch.Errorf(deepresearch.EINVALID, "unexpected %q response from anthropic", first.Type)
	}

	return deepresearch.ParseEnhancement(first.Text)
}
