package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values. Provider credentials
// are optional: an absent credential degrades the matching adapter fail-open, it
// never stops the process. Presence is reported explicitly at startup so the
// degradation is a visible decision, not a silent default.
type Config struct {
	Port        string
	DatabaseURL string

	MapsAPIKey           string
	PageSpeedAPIKey      string
	GitHubToken          string
	YouTubeAPIKey        string
	TwitterBearerToken   string
	PerplexityAPIKey     string
	ScraperAPIKey        string
	SocialCountsAPIKey   string
	AnalyticsClientEmail string
	AnalyticsPrivateKey  string

	RateLimitNarrative RateLimitConfig
	LogSuppress        []string
}

// CredentialStatus reports whether one provider credential was configured.
type CredentialStatus struct {
	Provider   string
	Configured bool
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		MapsAPIKey:           os.Getenv("GOOGLE_MAPS_API_KEY"),
		PageSpeedAPIKey:      os.Getenv("PAGESPEED_API_KEY"),
		GitHubToken:          os.Getenv("GITHUB_TOKEN"),
		YouTubeAPIKey:        os.Getenv("YOUTUBE_API_KEY"),
		TwitterBearerToken:   os.Getenv("TWITTER_BEARER_TOKEN"),
		PerplexityAPIKey:     os.Getenv("PERPLEXITY_API_KEY"),
		ScraperAPIKey:        os.Getenv("SCRAPER_API_KEY"),
		SocialCountsAPIKey:   os.Getenv("SOCIAL_COUNTS_API_KEY"),
		AnalyticsClientEmail: os.Getenv("GA_CLIENT_EMAIL"),
		AnalyticsPrivateKey:  normalizePrivateKey(os.Getenv("GA_PRIVATE_KEY")),

		LogSuppress: splitList(os.Getenv("LOG_SUPPRESS")),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_NARRATIVE", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_NARRATIVE value: %w", err)
	}
	cfg.RateLimitNarrative = rl

	return cfg, nil
}

// Report lists every provider credential and whether it was supplied.
func (c *Config) Report() []CredentialStatus {
	return []CredentialStatus{
		{Provider: "google_maps", Configured: c.MapsAPIKey != ""},
		{Provider: "pagespeed", Configured: c.PageSpeedAPIKey != ""},
		{Provider: "github", Configured: c.GitHubToken != ""},
		{Provider: "youtube", Configured: c.YouTubeAPIKey != ""},
		{Provider: "twitter", Configured: c.TwitterBearerToken != ""},
		{Provider: "perplexity", Configured: c.PerplexityAPIKey != ""},
		{Provider: "scraper", Configured: c.ScraperAPIKey != ""},
		{Provider: "social_counts", Configured: c.SocialCountsAPIKey != ""},
		{Provider: "analytics", Configured: c.AnalyticsClientEmail != "" && c.AnalyticsPrivateKey != ""},
	}
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

// normalizePrivateKey restores real newlines in PEM keys pasted as single-line
// env values with literal "\n" sequences.
func normalizePrivateKey(raw string) string {
	return strings.ReplaceAll(raw, `\n`, "\n")
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
