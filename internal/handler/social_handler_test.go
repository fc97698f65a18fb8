package handler

import (
	"net/http"
	"testing"

	"github.com/octobees/brand-equity/api/internal/dto"
	"github.com/octobees/brand-equity/api/internal/provider"
)

func TestSocialFollowers(t *testing.T) {
	client := fakeClient(func(r *http.Request) (*http.Response, error) {
		if got := r.Header.Get("X-RapidAPI-Key"); got != "counts-key" {
			t.Errorf("missing aggregator key header, got %q", got)
		}
		switch r.URL.Query().Get("platform") {
		case "instagram":
			return jsonResponse(http.StatusOK, `{"followers": 1200}`), nil
		case "twitter":
			return jsonResponse(http.StatusOK, `{"public_metrics": {"followers_count": 300}}`), nil
		case "tiktok":
			return jsonResponse(http.StatusOK, `{"unrelated": true}`), nil
		default:
			t.Fatalf("unexpected platform %q", r.URL.Query().Get("platform"))
			return nil, nil
		}
	})

	h := NewSocialHandler(provider.NewSocialCountsClient(client, "counts-key", ""))
	c, rec := newJSONContext(t, http.MethodPost, "/api/social/followers", dto.SocialFollowersRequest{
		Profiles: []dto.SocialProfile{
			{Platform: "instagram", URL: "https://instagram.com/acme"},
			{Platform: "twitter", URL: "https://twitter.com/acme"},
			{Platform: "tiktok", URL: "https://tiktok.com/@acme"},
		},
	})

	if err := h.Followers(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp dto.SocialFollowersResponse
	decodeBody(t, rec, &resp)
	if !resp.Success {
		t.Fatalf("expected success, got %q", resp.Error)
	}
	if resp.TotalFollowers != 1500 {
		t.Fatalf("expected total 1500, got %d", resp.TotalFollowers)
	}

	if resp.Profiles[0].Followers == nil || *resp.Profiles[0].Followers != 1200 {
		t.Fatalf("instagram followers wrong: %v", resp.Profiles[0].Followers)
	}
	if resp.Profiles[1].Followers == nil || *resp.Profiles[1].Followers != 300 {
		t.Fatalf("twitter followers wrong: %v", resp.Profiles[1].Followers)
	}
	// No recognised field in the tiktok payload: unknown stays null.
	if resp.Profiles[2].Followers != nil {
		t.Fatalf("expected nil followers for unresolvable profile, got %v", *resp.Profiles[2].Followers)
	}
}

func TestSocialFollowersNotConfigured(t *testing.T) {
	h := NewSocialHandler(provider.NewSocialCountsClient(fakeClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("no upstream call expected without a key")
		return nil, nil
	}), "", ""))

	c, rec := newJSONContext(t, http.MethodPost, "/api/social/followers", dto.SocialFollowersRequest{
		Profiles: []dto.SocialProfile{{Platform: "instagram", URL: "https://instagram.com/acme"}},
	})

	if err := h.Followers(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.SocialFollowersResponse
	decodeBody(t, rec, &resp)
	if !resp.Success || resp.Error == "" {
		t.Fatalf("expected degraded success with error string, got %+v", resp)
	}
	if resp.TotalFollowers != 0 || resp.Profiles[0].Followers != nil {
		t.Fatalf("expected cleared followers and zero total, got %+v", resp)
	}
}

func TestSocialFollowersLookupFailureSkipsProfile(t *testing.T) {
	client := fakeClient(func(r *http.Request) (*http.Response, error) {
		if r.URL.Query().Get("platform") == "instagram" {
			return jsonResponse(http.StatusOK, `{"followers": 500}`), nil
		}
		return jsonResponse(http.StatusBadGateway, `{"error":"upstream down"}`), nil
	})

	h := NewSocialHandler(provider.NewSocialCountsClient(client, "counts-key", ""))
	c, rec := newJSONContext(t, http.MethodPost, "/api/social/followers", dto.SocialFollowersRequest{
		Profiles: []dto.SocialProfile{
			{Platform: "instagram", URL: "https://instagram.com/acme"},
			{Platform: "facebook", URL: "https://facebook.com/acme"},
		},
	})

	if err := h.Followers(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp dto.SocialFollowersResponse
	decodeBody(t, rec, &resp)
	if !resp.Success {
		t.Fatalf("partial failure keeps success true, got %+v", resp)
	}
	if resp.TotalFollowers != 500 {
		t.Fatalf("expected total 500 from the one resolved profile, got %d", resp.TotalFollowers)
	}
	if resp.Profiles[1].Followers != nil {
		t.Fatal("failed lookup must leave followers nil")
	}
}

func TestSocialFollowersEmptyProfiles(t *testing.T) {
	h := NewSocialHandler(provider.NewSocialCountsClient(nil, "counts-key", ""))
	c, rec := newJSONContext(t, http.MethodPost, "/api/social/followers", dto.SocialFollowersRequest{})

	if err := h.Followers(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
