package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTokenURL = "https://oauth2.googleapis.com/token"
	analyticsScope  = "https://www.googleapis.com/auth/analytics.readonly"
	jwtBearerGrant  = "urn:ietf:params:oauth:grant-type:jwt-bearer"
)

// ServiceAccountTokenSource exchanges a locally signed RS256 assertion for an
// OAuth access token scoped to analytics.readonly.
type ServiceAccountTokenSource struct {
	email    string
	key      string
	tokenURL string
	client   *http.Client
	ttl      time.Duration
}

// NewServiceAccountTokenSource constructs a token source for the given
// service-account credentials. Empty credentials yield a source whose Token
// always fails, which callers surface as a soft failure.
func NewServiceAccountTokenSource(email, privateKeyPEM string, client *http.Client, tokenURL string) *ServiceAccountTokenSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	return &ServiceAccountTokenSource{
		email:    email,
		key:      privateKeyPEM,
		tokenURL: tokenURL,
		client:   client,
		ttl:      time.Hour,
	}
}

// Configured reports whether both credential halves were supplied.
func (s *ServiceAccountTokenSource) Configured() bool {
	return s.email != "" && s.key != ""
}

// Token signs a one-hour RS256 assertion and exchanges it at the token endpoint.
func (s *ServiceAccountTokenSource) Token(ctx context.Context) (string, error) {
	if !s.Configured() {
		return "", errors.New("service account credentials not configured")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(s.key))
	if err != nil {
		return "", fmt.Errorf("parse service account key: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   s.email,
		"scope": analyticsScope,
		"aud":   s.tokenURL,
		"iat":   jwt.NewNumericDate(now),
		"exp":   jwt.NewNumericDate(now.Add(s.ttl)),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign service account assertion: %w", err)
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrant)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", errors.New("token endpoint returned empty access token")
	}
	return payload.AccessToken, nil
}
