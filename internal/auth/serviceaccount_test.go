package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testPrivateKeyPEM(t *testing.T) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("marshal key: %v", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

func TestServiceAccountTokenSource_NotConfigured(t *testing.T) {
	calls := 0
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return nil, nil
	})}

	src := NewServiceAccountTokenSource("", "", client, "http://token.test")
	if src.Configured() {
		t.Fatalf("expected unconfigured source")
	}
	if _, err := src.Token(context.Background()); err == nil {
		t.Fatalf("expected error for missing credentials")
	}
	if calls != 0 {
		t.Fatalf("expected no network call, got %d", calls)
	}
}

func TestServiceAccountTokenSource_Exchange(t *testing.T) {
	pemKey := testPrivateKeyPEM(t)

	var capturedGrant, capturedAssertion string
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if err := req.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		capturedGrant = req.PostForm.Get("grant_type")
		capturedAssertion = req.PostForm.Get("assertion")
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"access_token":"ya29.test-token"}`)),
		}, nil
	})}

	src := NewServiceAccountTokenSource("svc@project.iam.gserviceaccount.com", pemKey, client, "http://token.test")
	token, err := src.Token(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "ya29.test-token" {
		t.Fatalf("unexpected token: %s", token)
	}
	if capturedGrant != jwtBearerGrant {
		t.Fatalf("unexpected grant type: %s", capturedGrant)
	}
	// an RS256 JWT assertion has three dot-separated segments
	if parts := strings.Split(capturedAssertion, "."); len(parts) != 3 {
		t.Fatalf("expected signed JWT assertion, got %q", capturedAssertion)
	}
}

func TestServiceAccountTokenSource_ExchangeFailure(t *testing.T) {
	pemKey := testPrivateKeyPEM(t)

	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusUnauthorized,
			Body:       io.NopCloser(strings.NewReader(`{"error":"invalid_grant"}`)),
		}, nil
	})}

	src := NewServiceAccountTokenSource("svc@project.iam.gserviceaccount.com", pemKey, client, "http://token.test")
	if _, err := src.Token(context.Background()); err == nil {
		t.Fatalf("expected error on non-2xx token response")
	}
}

func TestServiceAccountTokenSource_BadKey(t *testing.T) {
	calls := 0
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return nil, nil
	})}

	src := NewServiceAccountTokenSource("svc@project.iam.gserviceaccount.com", "not-a-pem-key", client, "http://token.test")
	if _, err := src.Token(context.Background()); err == nil {
		t.Fatalf("expected error for malformed key")
	}
	if calls != 0 {
		t.Fatalf("expected no network call for malformed key, got %d", calls)
	}
}
