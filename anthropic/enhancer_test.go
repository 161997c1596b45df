package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/deepresearch"
	"github.com/fwojciec/deepresearch/anthropic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// messageServer replies to every Messages request with the given content blocks.
func messageServer(t *testing.T, content []map[string]any) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/messages")

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, anthropic.DefaultModel, body["model"])
		assert.EqualValues(t, anthropic.DefaultMaxTokens, body["max_tokens"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_test_001",
			"type":        "message",
			"role":        "assistant",
			"content":     content,
			"model":       anthropic.DefaultModel,
			"stop_reason": "end_turn",
			"usage": map[string]any{
				"input_tokens":  10,
				"output_tokens": 5,
			},
		})
	}))
}

func TestEnhancer_Enhance(t *testing.T) {
	t.Parallel()

	t.Run("parses text response", func(t *testing.T) {
		t.Parallel()

		ts := messageServer(t, []map[string]any{{
			"type": "text",
			"text": "```json\n{\"title\":\"Tokenizer design\",\"description\":\"BPE trade-offs\",\"summary\":\"\",\"keywords\":[\"bpe\",\"tokens\"],\"category\":\"programming\"}\n```",
		}})
		defer ts.Close()

		e := anthropic.NewEnhancer("test-key", anthropic.WithBaseURL(ts.URL))

		got, err := e.Enhance(context.Background(), "conversation about tokenizers", "https://claude.ai/share/1")

		require.NoError(t, err)
		assert.Equal(t, "Tokenizer design", got.Title)
		assert.Equal(t, "BPE trade-offs", got.Summary)
		assert.Equal(t, []string{"bpe", "tokens"}, got.Keywords)
		assert.Equal(t, deepresearch.CategoryProgramming, got.Category)
	})

	t.Run("rejects non-text response", func(t *testing.T) {
		t.Parallel()

		ts := messageServer(t, []map[string]any{{
			"type":  "tool_use",
			"id":    "toolu_1",
			"name":  "lookup",
			"input": map[string]any{},
		}})
		defer ts.Close()

		e := anthropic.NewEnhancer("test-key", anthropic.WithBaseURL(ts.URL))

		_, err := e.Enhance(context.Background(), "conversation", "https://claude.ai/share/1")

		require.Error(t, err)
		assert.Equal(t, deepresearch.EINVALID, deepresearch.ErrorCode(err))
	})

	t.Run("rejects response missing required fields", func(t *testing.T) {
		t.Parallel()

		ts := messageServer(t, []map[string]any{{"type": "text", "text": `{"title":"Only a title"}`}})
		defer ts.Close()

		e := anthropic.NewEnhancer("test-key", anthropic.WithBaseURL(ts.URL))

		_, err := e.Enhance(context.Background(), "conversation", "https://claude.ai/share/1")

		require.Error(t, err)
		assert.Equal(t, deepresearch.EINVALID, deepresearch.ErrorCode(err))
	})

	t.Run("returns API errors", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`))
		}))
		defer ts.Close()

		e := anthropic.NewEnhancer("test-key", anthropic.WithBaseURL(ts.URL), anthropic.WithMaxRetries(0))

		_, err := e.Enhance(context.Background(), "conversation", "https://claude.ai/share/1")

		require.Error(t, err)
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := anthropic.NewEnhancer("").Enhance(context.Background(), "conversation", "https://claude.ai/share/1")

		require.Error(t, err)
		assert.Equal(t, deepresearch.EINVALID, deepresearch.ErrorCode(err))
	})
}
