package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/octobees/brand-equity/api/internal/dto"
)

const semrushOverviewURL = "https://www.semrush.com/website/"

// SemrushClient scrapes the public SEMrush website-overview page through the
// scraping proxy.
type SemrushClient struct {
	client     *http.Client
	scraperKey string
	proxyURL   string
}

// NewSemrushClient builds a SEMrush adapter. A nil client gets a 30s timeout.
func NewSemrushClient(client *http.Client, scraperKey, proxyURL string) *SemrushClient {
	if client == nil {
		client = defaultClient(30 * time.Second)
	}
	if proxyURL == "" {
		proxyURL = "https://api.scraperapi.com"
	}
	return &SemrushClient{client: client, scraperKey: scraperKey, proxyURL: proxyURL}
}

// DomainOverview fetches the overview page for a domain and extracts the SEO
// signals the dashboard shows. Metrics missing from the page stay nil.
func (s *SemrushClient) DomainOverview(ctx context.Context, domain string) (*dto.SemrushMetrics, error) {
	if domain == "" {
		return nil, fmt.Errorf("domain is required")
	}
	if s.scraperKey == "" {
		return nil, ErrNotConfigured
	}

	target := semrushOverviewURL + url.PathEscape(domain) + "/overview/"
	endpoint := fmt.Sprintf("%s/?api_key=%s&render=true&url=%s",
		s.proxyURL, url.QueryEscape(s.scraperKey), url.QueryEscape(target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch semrush page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse semrush page: %w", err)
	}

	metrics := &dto.SemrushMetrics{Domain: domain}

	doc.Find("[data-test]").Each(func(_ int, sel *goquery.Selection) {
		attr, _ := sel.Attr("data-test")
		value := strings.TrimSpace(sel.Text())
		switch attr {
		case "authority-score":
			if n := parseAbbreviatedNumber(value); n != nil && *n >= 0 && *n <= 100 {
				score := int(*n)
				metrics.AuthorityScore = &score
			}
		case "organic-keywords":
			metrics.OrganicKeywords = parseAbbreviatedNumber(value)
		case "organic-traffic":
			metrics.MonthlyTraffic = parseAbbreviatedNumber(value)
		case "backlinks":
			metrics.Backlinks = parseAbbreviatedNumber(value)
		}
	})

	return metrics, nil
}

// parseAbbreviatedNumber converts display values like "1.2K", "3.4M" or
// "12,345" into integers. Unparseable values become nil, never 0.
func parseAbbreviatedNumber(raw string) *int64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return nil
	}

	multiplier := int64(1)
	switch {
	case strings.HasSuffix(raw, "K"), strings.HasSuffix(raw, "k"):
		multiplier = 1_000
		raw = raw[:len(raw)-1]
	case strings.HasSuffix(raw, "M"), strings.HasSuffix(raw, "m"):
		multiplier = 1_000_000
		raw = raw[:len(raw)-1]
	case strings.HasSuffix(raw, "B"), strings.HasSuffix(raw, "b"):
		multiplier = 1_000_000_000
		raw = raw[:len(raw)-1]
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return nil
	}
	result := int64(value * float64(multiplier))
	return &result
}
