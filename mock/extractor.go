package mock

import "github.com/fwojciec/deepresearch"

var _ deepresearch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of deepresearch.Extractor.
type Extractor struct {
	ExtractFn        func(html string, provider deepresearch.Provider) (*deepresearch.ExtractResult, error)
	ExtractGenericFn func(html string, provider deepresearch.Provider) (*deepresearch.ExtractResult, error)
}

func (e *Extractor) Extract(html string, provider deepresearch.Provider) (*deepresearch.ExtractResult, error) {
	return e.ExtractFn(html, provider)
}

func (e *Extractor) ExtractGeneric(html string, provider deepresearch.Provider) (*deepresearch.ExtractResult, error) {
	return e.ExtractGenericFn(html, provider)
}
