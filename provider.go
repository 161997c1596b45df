package deepresearch

import (
	"net/url"
	"strings"
)

// Provider identifies the AI chat or search service a submitted URL originates from.
type Provider string

// Supported providers.
const (
	ProviderClaude     Provider = "claude"
	ProviderChatGPT    Provider = "chatgpt"
	ProviderGemini     Provider = "gemini"
	ProviderGrok       Provider = "grok"
	ProviderPerplexity Provider = "perplexity"
	ProviderOther      Provider = "other"
)

// Providers lists every provider tag, ProviderOther last.
var Providers = []Provider{
	ProviderClaude,
	ProviderChatGPT,
	ProviderGemini,
	ProviderGrok,
	ProviderPerplexity,
	ProviderOther,
}

// hostPatterns is checked in order, first match wins.
var hostPatterns = []struct {
	pattern  string
	provider Provider
}{
	{"claude.ai", ProviderClaude},
	{"chat.openai.com", ProviderChatGPT},
	{"chatgpt.com", ProviderChatGPT},
	{"gemini.google.com", ProviderGemini},
	{"grok.x.ai", ProviderGrok},
	{"grok.com", ProviderGrok},
	{"x.com", ProviderGrok},
	{"perplexity.ai", ProviderPerplexity},
}

// IsValid returns true if p is one of the known provider tags.
func (p Provider) IsValid() bool {
	for _, known := range Providers {
		if p == known {
			return true
		}
	}
	return false
}

// DefaultTitle returns the placeholder title used when a page has no <title>.
func (p Provider) DefaultTitle() string {
	switch p {
	case ProviderClaude:
		return "Claude Conversation"
	case ProviderChatGPT:
		return "ChatGPT Conversation"
	case ProviderGemini:
		return "Gemini Conversation"
	case ProviderGrok:
		return "Grok Conversation"
	case ProviderPerplexity:
		return "Perplexity Search"
	}
	return "Untitled Research"
}

// DetectProvider classifies a parsed URL by its hostname.
// Patterns match on a label boundary, so "x.com" matches "x.com" and
// "www.x.com" but not "dropbox.com". Unmapped hosts return ProviderOther.
func DetectProvider(u *url.URL) Provider {
	host := strings.ToLower(u.Hostname())
	for _, hp := range hostPatterns {
		if matchesHost(host, hp.pattern) {
			return hp.provider
		}
	}
	return ProviderOther
}

func matchesHost(host, pattern string) bool {
	idx := strings.Index(host, pattern)
	for idx >= 0 {
		if idx == 0 || host[idx-1] == '.' {
			return true
		}
		next := strings.Index(host[idx+1:], pattern)
		if next < 0 {
			return false
		}
		idx += next + 1
	}
	return false
}

// ParseURL validates a submitted URL. Only absolute http and https URLs
// with a host are accepted.
func ParseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, Errorf(EINVALID, "URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid URL %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, Errorf(EINVALID, "URL must use http or https: %q", raw)
	}
	if u.Host == "" {
		return nil, Errorf(EINVALID, "URL must include a host: %q", raw)
	}
	return u, nil
}
