package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

var idnaProfile = idna.Lookup

// ErrInvalidDomain indicates the caller supplied something that is not a
// resolvable-looking domain name.
var ErrInvalidDomain = errors.New("invalid domain")

// NormalizeDomain reduces caller input (bare domain or full URL) to a
// lowercase registrable host, punycoding internationalized names.
func NormalizeDomain(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidDomain
	}

	lowered := strings.ToLower(raw)
	if !strings.Contains(lowered, "://") {
		lowered = "https://" + lowered
	}
	parsed, err := url.Parse(lowered)
	if err != nil || parsed.Host == "" {
		return "", ErrInvalidDomain
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	ascii, err := idnaProfile.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDomain, err)
	}
	if !strings.Contains(ascii, ".") {
		return "", ErrInvalidDomain
	}
	return ascii, nil
}

// NormalizeWebsiteURL ensures a caller-supplied site address carries a scheme
// so it is accepted by the page-performance audit.
func NormalizeWebsiteURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("url is required")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("invalid url: %q", raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme: %s", parsed.Scheme)
	}
	return parsed.String(), nil
}
