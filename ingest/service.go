// Package ingest turns submitted conversation URLs into stored research
// records. It composes provider detection, extraction with generic
// fallback, optional AI enhancement and record assembly.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/deepresearch"
)

// Config bounds the ingestion pipeline.
type Config struct {
	// MaxContentLength bounds stored content in characters.
	MaxContentLength int

	// MinEnhanceLength is the shortest content worth sending to the enhancer.
	MinEnhanceLength int

	// EnhanceInputLength bounds the text sent to the enhancer.
	EnhanceInputLength int

	// EnhanceTimeout bounds a single enhancement call.
	EnhanceTimeout time.Duration

	// KeywordLimit caps tags derived locally when enhancement is unavailable.
	KeywordLimit int
}

// DefaultConfig returns the standard pipeline bounds.
func DefaultConfig() Config {
	return Config{
		MaxContentLength:   deepresearch.MaxContentLength,
		MinEnhanceLength:   50,
		EnhanceInputLength: deepresearch.EnhanceInputLength,
		EnhanceTimeout:     60 * time.Second,
		KeywordLimit:       deepresearch.FallbackKeywordLimit,
	}
}

// Metadata keys added to every record.
const (
	MetaScrapedAt     = "scrapedAt"
	MetaOriginalURL   = "originalUrl"
	MetaContentLength = "contentLength"
	MetaAIProcessed   = "aiProcessed"
	MetaProvider      = "provider"
	MetaContentHash   = "contentHash"
)

// SubmitRequest is a single URL submission.
type SubmitRequest struct {
	URL          string
	AuthorName   string
	AuthorHandle string
}

// Service ingests submissions into a ResearchService.
// Enhancer may be nil, in which case every record stays pending.
type Service struct {
	Researches deepresearch.ResearchService
	Fetcher    deepresearch.Fetcher
	Extractor  deepresearch.Extractor
	Enhancer   deepresearch.Enhancer
	Logger     *slog.Logger
	Config     Config

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Submit ingests one URL and returns the stored record.
//
// Errors: EINVALID for a malformed URL, ECONFLICT when the URL is already
// stored (checked before any network access), EFETCH when the page cannot
// be retrieved and EEXTRACT when no content survives extraction.
// Enhancement failures are logged and never returned.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*deepresearch.Research, error) {
	u, err := deepresearch.ParseURL(req.URL)
	if err != nil {
		return nil, err
	}
	url := u.String()

	exists, err := deepresearch.ResearchExists(ctx, s.Researches, url)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, deepresearch.Errorf(deepresearch.ECONFLICT, "research already exists for %s", url)
	}

	provider := deepresearch.DetectProvider(u)

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		if deepresearch.ErrorCode(err) == deepresearch.EFETCH {
			return nil, err
		}
		return nil, deepresearch.Errorf(deepresearch.EFETCH, "failed to fetch %s: %v", url, err)
	}

	extracted, err := s.extract(html, provider)
	if err != nil {
		return nil, err
	}

	enh := s.enhance(ctx, extracted.Content, url)

	r := s.assemble(req, url, provider, extracted, enh)
	if err := s.Researches.CreateResearch(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// extract runs provider extraction and re-runs generic extraction when the
// content falls short of deepresearch.MinContentLength.
func (s *Service) extract(html string, provider deepresearch.Provider) (*deepresearch.ExtractResult, error) {
	res, err := s.Extractor.Extract(html, provider)
	if err != nil {
		return nil, deepresearch.Errorf(deepresearch.EEXTRACT, "extraction failed: %v", err)
	}

	if deepresearch.RuneLen(res.Content) < deepresearch.MinContentLength {
		generic, err := s.Extractor.ExtractGeneric(html, provider)
		if err == nil && deepresearch.RuneLen(generic.Content) > deepresearch.RuneLen(res.Content) {
			res = generic
		}
	}

	if strings.TrimSpace(res.Content) == "" {
		return nil, deepresearch.Errorf(deepresearch.EEXTRACT, "no content could be extracted")
	}
	return res, nil
}

// enhance returns nil when no enhancement is available for any reason.
func (s *Service) enhance(ctx context.Context, content, url string) *deepresearch.Enhancement {
	cfg := s.config()
	if s.Enhancer == nil || deepresearch.RuneLen(content) <= cfg.MinEnhanceLength {
		return nil
	}

	if cfg.EnhanceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.EnhanceTimeout)
		defer cancel()
	}

	enh, err := s.Enhancer.Enhance(ctx, deepresearch.Truncate(content, cfg.EnhanceInputLength), url)
	if err != nil {
		s.logger().Warn("enhancement unavailable", "url", url, "err", err)
		return nil
	}
	if enh == nil {
		return nil
	}
	enh.Clamp()
	return enh
}

func (s *Service) assemble(req SubmitRequest, url string, provider deepresearch.Provider, res *deepresearch.ExtractResult, enh *deepresearch.Enhancement) *deepresearch.Research {
	cfg := s.config()
	content := deepresearch.Truncate(res.Content, cfg.MaxContentLength)

	r := &deepresearch.Research{
		URL:          url,
		Title:        res.Title,
		Description:  res.Description,
		Content:      content,
		Provider:     provider,
		AuthorName:   strings.TrimSpace(req.AuthorName),
		AuthorHandle: strings.TrimSpace(req.AuthorHandle),
		IsProcessed:  deepresearch.StatusPending,
	}

	if enh != nil {
		if enh.Title != "" {
			r.Title = enh.Title
		}
		r.Description = enh.Description
		r.Summary = enh.Summary
		r.Category = enh.Category
		r.Tags = enh.Keywords
		r.IsProcessed = deepresearch.StatusProcessed
	} else {
		r.Tags = deepresearch.ExtractKeywords(r.Title+" "+r.Description+" "+content, cfg.KeywordLimit)
	}

	r.Title = deepresearch.Normalize(r.Title, deepresearch.MaxTitleLength)
	if r.Title == "" {
		r.Title = provider.DefaultTitle()
	}
	r.Description = deepresearch.Normalize(r.Description, deepresearch.MaxDescriptionLength)
	if r.Tags == nil {
		r.Tags = []string{}
	}

	r.Metadata = make(map[string]any, len(res.Metadata)+6)
	maps.Copy(r.Metadata, res.Metadata)
	r.Metadata[MetaScrapedAt] = s.now().UTC().Format(time.RFC3339)
	r.Metadata[MetaOriginalURL] = strings.TrimSpace(req.URL)
	r.Metadata[MetaContentLength] = deepresearch.RuneLen(content)
	r.Metadata[MetaAIProcessed] = enh != nil
	r.Metadata[MetaProvider] = string(provider)
	r.Metadata[MetaContentHash] = hashContent(content)

	return r
}

// config fills zero fields from DefaultConfig.
func (s *Service) config() Config {
	cfg := s.Config
	def := DefaultConfig()
	if cfg.MaxContentLength <= 0 {
		cfg.MaxContentLength = def.MaxContentLength
	}
	if cfg.MinEnhanceLength <= 0 {
		cfg.MinEnhanceLength = def.MinEnhanceLength
	}
	if cfg.EnhanceInputLength <= 0 {
		cfg.EnhanceInputLength = def.EnhanceInputLength
	}
	if cfg.EnhanceTimeout == 0 {
		cfg.EnhanceTimeout = def.EnhanceTimeout
	}
	if cfg.KeywordLimit <= 0 {
		cfg.KeywordLimit = def.KeywordLimit
	}
	return cfg
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// hashContent returns the xxHash of content as 16 hex digits.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
