package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/octobees/brand-equity/api/internal/dto"
)

const defaultGitHubBaseURL = "https://api.github.com"

// GitHubClient looks up public developer-presence signals. The API works
// unauthenticated at a reduced rate limit, so a missing token does not
// short-circuit this adapter.
type GitHubClient struct {
	client  *http.Client
	token   string
	baseURL string
}

// NewGitHubClient builds a GitHub adapter. A nil client gets a 10s timeout.
func NewGitHubClient(client *http.Client, token, baseURL string) *GitHubClient {
	if client == nil {
		client = defaultClient(10 * time.Second)
	}
	if baseURL == "" {
		baseURL = defaultGitHubBaseURL
	}
	return &GitHubClient{client: client, token: token, baseURL: baseURL}
}

// Stats fetches the user profile plus the first page of repos to sum stars.
func (g *GitHubClient) Stats(ctx context.Context, username string) (*dto.GitHubStats, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	headers := map[string]string{"Accept": "application/vnd.github+json"}
	if g.token != "" {
		headers["Authorization"] = "Bearer " + g.token
	}

	var user struct {
		Login       string `json:"login"`
		PublicRepos *int   `json:"public_repos"`
		Followers   *int   `json:"followers"`
	}
	userURL := fmt.Sprintf("%s/users/%s", g.baseURL, url.PathEscape(username))
	if err := getJSON(ctx, g.client, userURL, headers, &user); err != nil {
		return nil, fmt.Errorf("github user: %w", err)
	}

	stats := &dto.GitHubStats{
		Username:    user.Login,
		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
	}

	// Star total is best-effort: a failed repo listing leaves Stars nil
	// rather than failing the lookup.
	var repos []struct {
		StargazersCount int `json:"stargazers_count"`
	}
	reposURL := fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", g.baseURL, url.PathEscape(username))
	if err := getJSON(ctx, g.client, reposURL, headers, &repos); err == nil {
		total := 0
		for _, r := range repos {
			total += r.StargazersCount
		}
		stats.Stars = &total
	}

	return stats, nil
}
