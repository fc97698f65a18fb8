package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const defaultPerplexityBaseURL = "https://api.perplexity.ai"

// PerplexityClient generates narrative text through the chat-completions API.
// Unlike the other adapters its StatusError results are not flattened by the
// caller: rate-limit (429) and quota (402) responses reach the API caller.
type PerplexityClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
}

// NewPerplexityClient builds a Perplexity adapter. Generation is slow, so a
// nil client gets a 30s timeout.
func NewPerplexityClient(client *http.Client, apiKey, baseURL string) *PerplexityClient {
	if client == nil {
		client = defaultClient(30 * time.Second)
	}
	if baseURL == "" {
		baseURL = defaultPerplexityBaseURL
	}
	return &PerplexityClient{client: client, apiKey: apiKey, baseURL: baseURL, model: "sonar"}
}

// Complete sends the prompt and returns the generated text verbatim.
func (p *PerplexityClient) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt is required")
	}
	if p.apiKey == "" {
		return "", ErrNotConfigured
	}

	payload := map[string]any{
		"model": p.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	headers := map[string]string{"Authorization": "Bearer " + p.apiKey}

	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := postJSON(ctx, p.client, p.baseURL+"/chat/completions", headers, payload, &resp); err != nil {
		return "", fmt.Errorf("perplexity completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("perplexity returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
