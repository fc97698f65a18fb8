package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

const trustpilotPage = `<html><body>
<span data-rating-typography>4.6</span>
<span data-reviews-count-typography>12,345 total reviews</span>
%s
</body></html>`

func trustpilotCard(author, text, rating, datetime string) string {
	return fmt.Sprintf(`<article data-service-review-card-paper>
		<span data-consumer-name-typography>%s</span>
		<div data-service-review-rating><img alt="Rated %s out of 5"/></div>
		<p data-service-review-text-typography>%s</p>
		<time datetime="%s"></time>
	</article>`, author, rating, text, datetime)
}

func TestTrustpilotReviews(t *testing.T) {
	var cards strings.Builder
	for i := 0; i < 7; i++ {
		cards.WriteString(trustpilotCard(
			fmt.Sprintf("Reviewer %d", i), "good service", "4.5", "2026-08-01T10:00:00Z"))
	}
	page := fmt.Sprintf(trustpilotPage, cards.String())

	client := stubClient(func(r *http.Request) (*http.Response, error) {
		target := r.URL.Query().Get("url")
		if !strings.Contains(target, "trustpilot.com/review/acme.com") {
			t.Errorf("unexpected scrape target %q", target)
		}
		if got := r.URL.Query().Get("api_key"); got != "scraper-key" {
			t.Errorf("missing scraper key, got %q", got)
		}
		return stubResponse(http.StatusOK, page), nil
	})

	tp := NewTrustpilotClient(client, "scraper-key", "")
	summary, err := tp.Reviews(context.Background(), "acme.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TrustScore == nil || *summary.TrustScore != 4.6 {
		t.Fatalf("expected trust score 4.6, got %v", summary.TrustScore)
	}
	if summary.ReviewCount == nil || *summary.ReviewCount != 12345 {
		t.Fatalf("expected 12345 reviews, got %v", summary.ReviewCount)
	}
	if len(summary.Reviews) != 5 {
		t.Fatalf("expected reviews capped at 5, got %d", len(summary.Reviews))
	}

	first := summary.Reviews[0]
	if first.Author != "Reviewer 0" || first.Rating != 4.5 || first.Time != "2026-08-01T10:00:00Z" {
		t.Fatalf("unexpected first review: %+v", first)
	}
}

func TestTrustpilotReviewsEmptyPage(t *testing.T) {
	client := stubClient(func(r *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusOK, "<html><body></body></html>"), nil
	})

	tp := NewTrustpilotClient(client, "scraper-key", "")
	summary, err := tp.Reviews(context.Background(), "acme.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TrustScore != nil || summary.ReviewCount != nil {
		t.Fatalf("missing page data must stay nil, got %+v", summary)
	}
	if len(summary.Reviews) != 0 {
		t.Fatalf("expected no reviews, got %d", len(summary.Reviews))
	}
}

func TestTrustpilotNotConfigured(t *testing.T) {
	tp := NewTrustpilotClient(stubClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected without a key")
		return nil, nil
	}), "", "")

	_, err := tp.Reviews(context.Background(), "acme.com")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestParseReviewCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"12,345 total reviews", 12345, true},
		{"Reviews 42", 42, true},
		{"no numbers here", 0, false},
	}
	for _, tc := range cases {
		got := parseReviewCount(tc.in)
		if tc.ok {
			if got == nil || *got != tc.want {
				t.Errorf("parseReviewCount(%q) = %v, want %d", tc.in, got, tc.want)
			}
		} else if got != nil {
			t.Errorf("parseReviewCount(%q) = %d, want nil", tc.in, *got)
		}
	}
}
