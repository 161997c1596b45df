package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/deepresearch"
	"github.com/fwojciec/deepresearch/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// newTestClient returns a genai client that talks to server.
func newTestClient(t *testing.T, server *httptest.Server) *genai.Client {
	t.Helper()

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  server.Client(),
		HTTPOptions: genai.HTTPOptions{BaseURL: server.URL},
	})
	require.NoError(t, err)
	return client
}

// respondWithText replies to generateContent with a single text part.
func respondWithText(t *testing.T, text string) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": text}},
				},
				"finishReason": "STOP",
			}},
		})
	}
}

func TestEnhancer_Enhance_ReturnsErrorWhenClientNil(t *testing.T) {
	t.Parallel()

	e := gemini.NewEnhancer(nil, "")

	_, err := e.Enhance(context.Background(), "some text", "https://claude.ai/share/1")

	require.Error(t, err)
	assert.Equal(t, deepresearch.EINVALID, deepresearch.ErrorCode(err))
	assert.Contains(t, deepresearch.ErrorMessage(err), "not configured")
}

func TestEnhancer_Enhance_ParsesJSONResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(respondWithText(t, `{"title":"RAG pipelines","description":"Retrieval design notes","summary":"Covers chunking.","keywords":["rag","retrieval"],"category":"AI/ML"}`))
	defer server.Close()

	e := gemini.NewEnhancer(newTestClient(t, server), "")

	got, err := e.Enhance(context.Background(), "conversation about retrieval", "https://gemini.google.com/share/abc")

	require.NoError(t, err)
	assert.Equal(t, "RAG pipelines", got.Title)
	assert.Equal(t, "Retrieval design notes", got.Description)
	assert.Equal(t, []string{"rag", "retrieval"}, got.Keywords)
	assert.Equal(t, deepresearch.CategoryAIML, got.Category)
}

func TestEnhancer_Enhance_RejectsMalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(respondWithText(t, "I cannot help with that."))
	defer server.Close()

	e := gemini.NewEnhancer(newTestClient(t, server), "")

	_, err := e.Enhance(context.Background(), "conversation", "https://gemini.google.com/share/abc")

	require.Error(t, err)
	assert.Equal(t, deepresearch.EINVALID, deepresearch.ErrorCode(err))
}

func TestEnhancer_Enhance_ReturnsErrorOnServerFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	e := gemini.NewEnhancer(newTestClient(t, server), "")

	_, err := e.Enhance(context.Background(), "conversation", "https://gemini.google.com/share/abc")

	require.Error(t, err)
}

func TestBuildConfig_RequestsJSON(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "research conversations")
	assert.Equal(t, "application/json", config.ResponseMIMEType)
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.2, *config.Temperature, 0.001)
}
