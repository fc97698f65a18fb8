package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultSocialCountsBaseURL = "https://social-media-counts.p.rapidapi.com"

// SocialCountsClient resolves follower metrics for arbitrary platforms through
// the social-counts aggregator. The payload shape varies per platform, so the
// adapter returns the raw object and leaves field extraction to the follower
// fallback list.
type SocialCountsClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewSocialCountsClient builds a social-counts adapter. A nil client gets a
// 15s timeout.
func NewSocialCountsClient(client *http.Client, apiKey, baseURL string) *SocialCountsClient {
	if client == nil {
		client = defaultClient(15 * time.Second)
	}
	if baseURL == "" {
		baseURL = defaultSocialCountsBaseURL
	}
	return &SocialCountsClient{client: client, apiKey: apiKey, baseURL: baseURL}
}

// Configured reports whether the aggregator key was supplied.
func (s *SocialCountsClient) Configured() bool {
	return s.apiKey != ""
}

// Lookup fetches the metrics payload for one profile URL.
func (s *SocialCountsClient) Lookup(ctx context.Context, platform, profileURL string) (map[string]any, error) {
	if platform == "" || profileURL == "" {
		return nil, fmt.Errorf("platform and profile url are required")
	}
	if s.apiKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/counts?platform=%s&url=%s",
		s.baseURL, url.QueryEscape(platform), url.QueryEscape(profileURL))
	headers := map[string]string{"X-RapidAPI-Key": s.apiKey}

	var payload map[string]any
	if err := getJSON(ctx, s.client, endpoint, headers, &payload); err != nil {
		return nil, fmt.Errorf("social counts lookup: %w", err)
	}
	return payload, nil
}
