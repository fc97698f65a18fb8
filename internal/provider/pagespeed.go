package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/octobees/brand-equity/api/internal/dto"
)

const defaultPageSpeedBaseURL = "https://www.googleapis.com/pagespeedonline/v5"

// PageSpeedClient audits a site through PageSpeed Insights.
type PageSpeedClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewPageSpeedClient builds a PageSpeed adapter. Audits are slow, so the
// default timeout is the top of the allowed range.
func NewPageSpeedClient(client *http.Client, apiKey, baseURL string) *PageSpeedClient {
	if client == nil {
		client = defaultClient(30 * time.Second)
	}
	if baseURL == "" {
		baseURL = defaultPageSpeedBaseURL
	}
	return &PageSpeedClient{client: client, apiKey: apiKey, baseURL: baseURL}
}

// Run audits the URL and returns the four Lighthouse category scores scaled
// to 0-100. Unscored categories stay nil.
func (p *PageSpeedClient) Run(ctx context.Context, siteURL, strategy string) (*dto.PageSpeedScores, error) {
	if siteURL == "" {
		return nil, fmt.Errorf("url is required")
	}
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}
	if strategy != "desktop" && strategy != "mobile" {
		strategy = "mobile"
	}

	endpoint := fmt.Sprintf("%s/runPagespeed?url=%s&strategy=%s&category=performance&category=accessibility&category=best-practices&category=seo&key=%s",
		p.baseURL, url.QueryEscape(siteURL), strategy, url.QueryEscape(p.apiKey))

	var resp struct {
		LighthouseResult struct {
			Categories map[string]struct {
				Score *float64 `json:"score"`
			} `json:"categories"`
		} `json:"lighthouseResult"`
	}
	if err := getJSON(ctx, p.client, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("pagespeed: %w", err)
	}

	scores := &dto.PageSpeedScores{
		Performance:   categoryScore(resp.LighthouseResult.Categories, "performance"),
		Accessibility: categoryScore(resp.LighthouseResult.Categories, "accessibility"),
		BestPractices: categoryScore(resp.LighthouseResult.Categories, "best-practices"),
		SEO:           categoryScore(resp.LighthouseResult.Categories, "seo"),
	}
	return scores, nil
}

func categoryScore(categories map[string]struct {
	Score *float64 `json:"score"`
}, name string) *int {
	cat, ok := categories[name]
	if !ok || cat.Score == nil {
		return nil
	}
	scaled := int(*cat.Score*100 + 0.5)
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 100 {
		scaled = 100
	}
	return &scaled
}
