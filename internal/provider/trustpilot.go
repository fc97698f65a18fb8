package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/octobees/brand-equity/api/internal/dto"
)

const trustpilotReviewURL = "https://www.trustpilot.com/review/"

var reviewRatingExpr = regexp.MustCompile(`Rated (\d(?:\.\d)?) out of 5`)

// TrustpilotClient scrapes the public Trustpilot review page for a domain
// through the scraping proxy. Trustpilot has no public API tier, so the
// adapter parses rendered HTML.
type TrustpilotClient struct {
	client     *http.Client
	scraperKey string
	proxyURL   string
}

// NewTrustpilotClient builds a Trustpilot adapter. A nil client gets a 30s
// timeout because proxied page fetches are slow.
func NewTrustpilotClient(client *http.Client, scraperKey, proxyURL string) *TrustpilotClient {
	if client == nil {
		client = defaultClient(30 * time.Second)
	}
	if proxyURL == "" {
		proxyURL = "https://api.scraperapi.com"
	}
	return &TrustpilotClient{client: client, scraperKey: scraperKey, proxyURL: proxyURL}
}

// Reviews fetches the review page for the domain and extracts the trust
// score, review count and the newest reviews in page order.
func (t *TrustpilotClient) Reviews(ctx context.Context, domain string) (*dto.TrustpilotSummary, error) {
	if domain == "" {
		return nil, fmt.Errorf("domain is required")
	}
	if t.scraperKey == "" {
		return nil, ErrNotConfigured
	}

	target := trustpilotReviewURL + url.PathEscape(domain)
	endpoint := fmt.Sprintf("%s/?api_key=%s&url=%s",
		t.proxyURL, url.QueryEscape(t.scraperKey), url.QueryEscape(target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch trustpilot page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse trustpilot page: %w", err)
	}

	summary := &dto.TrustpilotSummary{Domain: domain}

	if raw := strings.TrimSpace(doc.Find("[data-rating-typography]").First().Text()); raw != "" {
		if score, err := strconv.ParseFloat(raw, 64); err == nil && score >= 0 && score <= 5 {
			summary.TrustScore = &score
		}
	}
	if raw := doc.Find("[data-reviews-count-typography]").First().Text(); raw != "" {
		if count := parseReviewCount(raw); count != nil {
			summary.ReviewCount = count
		}
	}

	doc.Find("article[data-service-review-card-paper]").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= 5 {
			return false
		}
		review := dto.Review{
			Author: strings.TrimSpace(card.Find("[data-consumer-name-typography]").First().Text()),
			Text:   strings.TrimSpace(card.Find("[data-service-review-text-typography]").First().Text()),
		}
		if alt, ok := card.Find("[data-service-review-rating] img").First().Attr("alt"); ok {
			if m := reviewRatingExpr.FindStringSubmatch(alt); len(m) == 2 {
				review.Rating, _ = strconv.ParseFloat(m[1], 64)
			}
		}
		if ts, ok := card.Find("time").First().Attr("datetime"); ok {
			review.Time = ts
		}
		summary.Reviews = append(summary.Reviews, review)
		return true
	})

	return summary, nil
}

// parseReviewCount extracts the leading integer from strings like
// "12,345 total reviews".
func parseReviewCount(raw string) *int {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		if r == ',' {
			return -1
		}
		return ' '
	}, raw)
	for _, field := range strings.Fields(cleaned) {
		if n, err := strconv.Atoi(field); err == nil && n >= 0 {
			return &n
		}
	}
	return nil
}
