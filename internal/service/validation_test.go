package service

import (
	"errors"
	"testing"
)

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"acme.com", "acme.com"},
		{"https://www.acme.com/path?x=1", "acme.com"},
		{"HTTP://Sub.Acme.COM", "sub.acme.com"},
		{"münchen.de", "xn--mnchen-3ya.de"},
	}
	for _, tc := range cases {
		got, err := NormalizeDomain(tc.in)
		if err != nil {
			t.Fatalf("NormalizeDomain(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeDomain(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "   ", "no-dot", "http://"} {
		if _, err := NormalizeDomain(bad); !errors.Is(err, ErrInvalidDomain) {
			t.Fatalf("NormalizeDomain(%q): expected ErrInvalidDomain, got %v", bad, err)
		}
	}
}

func TestNormalizeWebsiteURL(t *testing.T) {
	got, err := NormalizeWebsiteURL("acme.com/about")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://acme.com/about" {
		t.Fatalf("unexpected url: %s", got)
	}

	if _, err := NormalizeWebsiteURL(""); err == nil {
		t.Fatalf("expected error for empty url")
	}
	if _, err := NormalizeWebsiteURL("ftp://acme.com"); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
}
