package mock

import (
	"context"

	"github.com/fwojciec/deepresearch"
)

var _ deepresearch.Enhancer = (*Enhancer)(nil)

// Enhancer is a mock implementation of deepresearch.Enhancer.
type Enhancer struct {
	EnhanceFn func(ctx context.Context, text, sourceURL string) (*deepresearch.Enhancement, error)
}

func (e *Enhancer) Enhance(ctx context.Context, text, sourceURL string) (*deepresearch.Enhancement, error) {
	return e.EnhanceFn(ctx, text, sourceURL)
}
