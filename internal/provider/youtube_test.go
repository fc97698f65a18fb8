package provider

import (
	"context"
	"net/http"
	"testing"
)

func TestYouTubeChannelStats(t *testing.T) {
	client := stubClient(func(r *http.Request) (*http.Response, error) {
		if got := r.URL.Query().Get("part"); got != "snippet,statistics" {
			t.Errorf("unexpected part param %q", got)
		}
		return stubResponse(http.StatusOK, `{
			"items": [{
				"id": "UC123",
				"snippet": {"title": "Acme TV"},
				"statistics": {"subscriberCount": "52000", "viewCount": "1200000", "videoCount": "310"}
			}]
		}`), nil
	})

	y := NewYouTubeClient(client, "yt-key", "")
	stats, err := y.ChannelStats(context.Background(), "UC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Title != "Acme TV" {
		t.Fatalf("unexpected title %q", stats.Title)
	}
	if stats.Subscribers == nil || *stats.Subscribers != 52000 {
		t.Fatalf("expected 52000 subscribers, got %v", stats.Subscribers)
	}
	if stats.Videos == nil || *stats.Videos != 310 {
		t.Fatalf("expected 310 videos, got %v", stats.Videos)
	}
}

func TestYouTubeChannelNotFound(t *testing.T) {
	client := stubClient(func(r *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusOK, `{"items": []}`), nil
	})

	y := NewYouTubeClient(client, "yt-key", "")
	if _, err := y.ChannelStats(context.Background(), "missing"); err == nil {
		t.Fatal("expected an error for an unknown channel")
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"52000", 52000, true},
		{"0", 0, true},
		{"", 0, false},
		{"hidden", 0, false},
	}
	for _, tc := range cases {
		got := parseCount(tc.in)
		if tc.ok {
			if got == nil || *got != tc.want {
				t.Errorf("parseCount(%q) = %v, want %d", tc.in, got, tc.want)
			}
		} else if got != nil {
			t.Errorf("parseCount(%q) = %d, want nil", tc.in, *got)
		}
	}
}
