package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/octobees/brand-equity/api/internal/dto"
)

const defaultTwitterBaseURL = "https://api.twitter.com/2"

// TwitterClient resolves follower counts through the v2 users endpoint.
type TwitterClient struct {
	client  *http.Client
	bearer  string
	baseURL string
}

// NewTwitterClient builds a Twitter adapter. A nil client gets a 10s timeout.
func NewTwitterClient(client *http.Client, bearer, baseURL string) *TwitterClient {
	if client == nil {
		client = defaultClient(10 * time.Second)
	}
	if baseURL == "" {
		baseURL = defaultTwitterBaseURL
	}
	return &TwitterClient{client: client, bearer: bearer, baseURL: baseURL}
}

// Followers looks up the public metrics for one username.
func (t *TwitterClient) Followers(ctx context.Context, username string) (*dto.TwitterFollowers, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if t.bearer == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/users/by/username/%s?user.fields=public_metrics,verified",
		t.baseURL, url.PathEscape(username))
	headers := map[string]string{"Authorization": "Bearer " + t.bearer}

	var resp struct {
		Data struct {
			Username      string `json:"username"`
			Verified      bool   `json:"verified"`
			PublicMetrics struct {
				FollowersCount *int64 `json:"followers_count"`
			} `json:"public_metrics"`
		} `json:"data"`
		Errors []struct {
			Detail string `json:"detail"`
		} `json:"errors"`
	}
	if err := getJSON(ctx, t.client, endpoint, headers, &resp); err != nil {
		return nil, fmt.Errorf("twitter user lookup: %w", err)
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("twitter user lookup: %s", resp.Errors[0].Detail)
	}
	if resp.Data.Username == "" {
		return nil, fmt.Errorf("twitter user %s not found", username)
	}

	return &dto.TwitterFollowers{
		Username:  resp.Data.Username,
		Followers: resp.Data.PublicMetrics.FollowersCount,
		Verified:  resp.Data.Verified,
	}, nil
}
