package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
)

func anthropicReply(text string) string {
	reply := map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]string{
			{"type": "text", "text": text},
		},
	}
	b, _ := json.Marshal(reply)
	return string(b)
}

func TestNewAnthropicProviderRequiresAPIKey(t *testing.T) {
	_, err := NewAnthropicProvider(Config{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestSuggestHints(t *testing.T) {
	var gotAuth, gotVersion string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req, "messages")

		hints := `[{"name":"Netflix","category":"entertainment","frequency":"monthly","amount":15.99,"confidence":95}]`
		_, _ = w.Write([]byte(anthropicReply(hints)))
	}))
	defer server.Close()

	provider, err := NewAnthropicProvider(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	}, nil)
	require.NoError(t, err)

	patterns := []model.DetectedPattern{
		{
			Name:                 "NETFLIX.COM",
			Frequency:            model.FrequencyMonthly,
			RepresentativeAmount: 15.99,
			OccurrenceCount:      4,
		},
	}

	hints, err := provider.SuggestHints(context.Background(), patterns)
	require.NoError(t, err)
	require.Len(t, hints, 1)

	assert.Equal(t, "Netflix", hints[0].Name)
	assert.Equal(t, "entertainment", hints[0].Category)
	assert.Equal(t, model.FrequencyMonthly, hints[0].Frequency)
	assert.Equal(t, 15.99, hints[0].Amount)
	assert.Equal(t, 95, hints[0].Confidence)

	assert.Equal(t, "test-key", gotAuth)
	assert.Equal(t, "2023-06-01", gotVersion)
}

func TestSuggestHintsMarkdownWrappedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		wrapped := "```json\n[{\"name\":\"Spotify\",\"category\":\"entertainment\",\"frequency\":\"monthly\",\"amount\":9.99,\"confidence\":90}]\n```"
		_, _ = w.Write([]byte(anthropicReply(wrapped)))
	}))
	defer server.Close()

	provider, err := NewAnthropicProvider(Config{APIKey: "test-key", BaseURL: server.URL}, nil)
	require.NoError(t, err)

	hints, err := provider.SuggestHints(context.Background(), []model.DetectedPattern{
		{Name: "SPOTIFY USA", Frequency: model.FrequencyMonthly, RepresentativeAmount: 9.99},
	})
	require.NoError(t, err)
	require.Len(t, hints, 1)
	assert.Equal(t, "Spotify", hints[0].Name)
}

func TestSuggestHintsEmptyInput(t *testing.T) {
	provider, err := NewAnthropicProvider(Config{APIKey: "test-key"}, nil)
	require.NoError(t, err)

	hints, err := provider.SuggestHints(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, hints)
}

func TestSuggestHintsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error"}}`))
	}))
	defer server.Close()

	provider, err := NewAnthropicProvider(Config{APIKey: "test-key", BaseURL: server.URL}, nil)
	require.NoError(t, err)

	_, err = provider.SuggestHints(context.Background(), []model.DetectedPattern{
		{Name: "NETFLIX.COM", Frequency: model.FrequencyMonthly},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestSuggestHintsMalformedContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(anthropicReply("I cannot produce JSON today.")))
	}))
	defer server.Close()

	provider, err := NewAnthropicProvider(Config{APIKey: "test-key", BaseURL: server.URL}, nil)
	require.NoError(t, err)

	_, err = provider.SuggestHints(context.Background(), []model.DetectedPattern{
		{Name: "NETFLIX.COM", Frequency: model.FrequencyMonthly},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain JSON untouched", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence stripped", "```json\n[1,2]\n```", "[1,2]"},
		{"bare fence stripped", "```\n[1,2]\n```", "[1,2]"},
		{"surrounding whitespace trimmed", "  [1]  ", "[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.input))
		})
	}
}
