// Package enrich resolves enrichment hints for detected patterns using an
// LLM classification service. Hints refine names, categories, and
// confidence but detection never depends on them.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/service"
)

const defaultAnthropicURL = "https://api.anthropic.com/v1/messages"

// Config holds configuration for the Anthropic hint provider.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
}

// AnthropicProvider implements service.HintProvider against the Anthropic
// messages API.
type AnthropicProvider struct {
	httpClient  *http.Client
	logger      *slog.Logger
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

var _ service.HintProvider = (*AnthropicProvider)(nil)

// NewAnthropicProvider creates a new Anthropic hint provider.
func NewAnthropicProvider(cfg Config, logger *slog.Logger) (*AnthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	model := cfg.Model
	if model == "" {
		model = "claude-3-sonnet-20240229"
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAnthropicURL
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	return &AnthropicProvider{
		apiKey:      cfg.APIKey,
		model:       model,
		baseURL:     baseURL,
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// SuggestHints asks the model to refine names and categories for the given
// patterns. Returns an empty slice when there is nothing to enrich.
func (p *AnthropicProvider) SuggestHints(ctx context.Context, patterns []model.DetectedPattern) ([]model.EnrichmentHint, error) {
	if len(patterns) == 0 {
		return []model.EnrichmentHint{}, nil
	}

	systemPrompt := "You are a personal finance assistant. Given recurring transaction patterns, respond only with a JSON array of hints in the exact format requested."

	requestBody := map[string]any{
		"model":       p.model,
		"max_tokens":  p.maxTokens,
		"temperature": p.temperature,
		"system":      systemPrompt,
		"messages": []map[string]string{
			{
				"role":    "user",
				"content": buildPrompt(patterns),
			},
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, strings.NewReader(string(jsonBody)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response anthropicResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Content) == 0 {
		return nil, fmt.Errorf("no content in response")
	}

	return parseHints(response.Content[0].Text)
}

// buildPrompt renders the patterns into a prompt asking for hints.
func buildPrompt(patterns []model.DetectedPattern) string {
	var sb strings.Builder
	sb.WriteString("For each transaction pattern below, suggest a cleaned-up display name and a single category. ")
	sb.WriteString("Respond with a JSON array of objects with fields: name, category, frequency, amount, confidence (0-100). ")
	sb.WriteString("Keep frequency and amount identical to the input so hints can be matched back.\n\nPatterns:\n")
	for _, pat := range patterns {
		fmt.Fprintf(&sb, "- name=%q frequency=%s amount=%.2f occurrences=%d\n",
			pat.Name, pat.Frequency, pat.RepresentativeAmount, pat.OccurrenceCount)
	}
	return sb.String()
}

// parseHints extracts enrichment hints from the model's response text.
func parseHints(content string) ([]model.EnrichmentHint, error) {
	var jsonHints []struct {
		Name       string  `json:"name"`
		Category   string  `json:"category"`
		Frequency  string  `json:"frequency"`
		Amount     float64 `json:"amount"`
		Confidence int     `json:"confidence"`
	}

	content = cleanMarkdownWrapper(content)

	if err := json.Unmarshal([]byte(content), &jsonHints); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	hints := make([]model.EnrichmentHint, 0, len(jsonHints))
	for _, h := range jsonHints {
		hints = append(hints, model.EnrichmentHint{
			Name:       h.Name,
			Category:   h.Category,
			Frequency:  model.Frequency(h.Frequency),
			Amount:     h.Amount,
			Confidence: h.Confidence,
		})
	}

	return hints, nil
}

// cleanMarkdownWrapper strips markdown code fences the model sometimes
// wraps around JSON output.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}
	return content
}

// anthropicResponse represents the Anthropic API response structure.
type anthropicResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Role       string `json:"role"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
	Content    []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}
