package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/deepresearch/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longText returns n repetitions of a five-character word.
func longText(word string, n int) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n))
}

func newDoc(t *testing.T, html string) *gq.Document {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractWithSelectors(t *testing.T) {
	t.Parallel()

	t.Run("returns first selector meeting threshold", func(t *testing.T) {
		t.Parallel()

		doc := newDoc(t, `<html><body>
<div class="short">too short</div>
<div class="long">`+longText("alpha", 30)+`</div>
<div class="later">`+longText("omega", 30)+`</div>
</body></html>`)

		content, selector := goquery.ExtractWithSelectors(doc, []string{".missing", ".short", ".long", ".later"}, 0)

		assert.Equal(t, ".long", selector)
		assert.Equal(t, longText("alpha", 30), content)
	})

	t.Run("joins text of every matched element", func(t *testing.T) {
		t.Parallel()

		doc := newDoc(t, `<html><body>
<p class="turn">`+longText("first", 12)+`</p>
<p class="turn">`+longText("second", 10)+`</p>
</body></html>`)

		content, selector := goquery.ExtractWithSelectors(doc, []string{".turn"}, 0)

		assert.Equal(t, ".turn", selector)
		assert.Equal(t, longText("first", 12)+" "+longText("second", 10), content)
	})

	t.Run("collapses whitespace and truncates", func(t *testing.T) {
		t.Parallel()

		doc := newDoc(t, "<html><body><main>"+strings.Repeat("word\n\t  ", 50)+"</main></body></html>")

		content, _ := goquery.ExtractWithSelectors(doc, []string{"main"}, 120)

		assert.True(t, strings.HasPrefix(content, "word word word"))
		assert.NotContains(t, content, "\n")
		assert.LessOrEqual(t, len(content), 120)
	})

	t.Run("returns empty when nothing meets threshold", func(t *testing.T) {
		t.Parallel()

		doc := newDoc(t, `<html><body><main>short</main></body></html>`)

		content, selector := goquery.ExtractWithSelectors(doc, []string{"main"}, 0)

		assert.Empty(t, content)
		assert.Empty(t, selector)
	})
}

func TestGenericStrategy_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers content regions over body", func(t *testing.T) {
		t.Parallel()

		doc := newDoc(t, `<html><body><nav>menu</nav><article>`+longText("story", 30)+`</article></body></html>`)

		content, selector := goquery.NewGenericStrategy().Extract(doc, 0)

		assert.Equal(t, "article", selector)
		assert.Equal(t, longText("story", 30), content)
	})

	t.Run("falls back to body text", func(t *testing.T) {
		t.Parallel()

		body := longText("plain", 40)
		doc := newDoc(t, `<html><body><div><span>`+body+`</span></div></body></html>`)

		content, selector := goquery.NewGenericStrategy().Extract(doc, 50)

		assert.Equal(t, "body", selector)
		assert.Equal(t, body[:50], content)
	})

	t.Run("returns short body when regions are too short", func(t *testing.T) {
		t.Parallel()

		doc := newDoc(t, `<html><body><main>tiny</main></body></html>`)

		content, selector := goquery.NewGenericStrategy().Extract(doc, 0)

		assert.Equal(t, "body", selector)
		assert.Equal(t, "tiny", content)
	})

	t.Run("returns empty for empty body", func(t *testing.T) {
		t.Parallel()

		doc := newDoc(t, `<html><body>   </body></html>`)

		content, _ := goquery.NewGenericStrategy().Extract(doc, 0)

		assert.Empty(t, content)
	})
}

func TestProviderStrategies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		strategy goquery.Strategy
		html     string
		selector string
	}{
		{
			name:     "claude",
			strategy: goquery.NewClaudeStrategy(),
			html:     `<div class="font-claude-message">` + longText("reply", 30) + `</div>`,
			selector: ".font-claude-message, [data-testid='user-message']",
		},
		{
			name:     "chatgpt",
			strategy: goquery.NewChatGPTStrategy(),
			html:     `<div data-message-author-role="assistant">` + longText("reply", 30) + `</div>`,
			selector: "[data-message-author-role]",
		},
		{
			name:     "gemini",
			strategy: goquery.NewGeminiStrategy(),
			html:     `<message-content>` + longText("reply", 30) + `</message-content>`,
			selector: "user-query, message-content",
		},
		{
			name:     "grok",
			strategy: goquery.NewGrokStrategy(),
			html:     `<div class="message-bubble">` + longText("reply", 30) + `</div>`,
			selector: ".message-bubble",
		},
		{
			name:     "perplexity",
			strategy: goquery.NewPerplexityStrategy(),
			html:     `<div data-testid="answer">` + longText("reply", 30) + `</div>`,
			selector: "[data-testid='answer']",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.name, tc.strategy.Name())

			doc := newDoc(t, "<html><body>"+tc.html+"</body></html>")
			content, selector := tc.strategy.Extract(doc, 0)

			assert.Equal(t, tc.selector, selector)
			assert.Equal(t, longText("reply", 30), content)
		})

		t.Run(tc.name+" ignores unrelated markup", func(t *testing.T) {
			t.Parallel()

			doc := newDoc(t, "<html><body><main>"+longText("other", 30)+"</main></body></html>")
			content, selector := tc.strategy.Extract(doc, 0)

			assert.Empty(t, content)
			assert.Empty(t, selector)
		})
	}
}
