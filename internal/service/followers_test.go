package service

import "testing"

func TestExtractFollowers_PriorityOrder(t *testing.T) {
	payload := map[string]any{
		"followers":      float64(100),
		"follower_count": float64(999),
	}
	n := ExtractFollowers(payload, "instagram")
	if n == nil || *n != 100 {
		t.Fatalf("expected followers field to win, got %v", n)
	}
}

func TestExtractFollowers_FallbackField(t *testing.T) {
	// follower_count present but followers absent resolves via the fallback list
	payload := map[string]any{"follower_count": float64(4321)}
	n := ExtractFollowers(payload, "pinterest")
	if n == nil || *n != 4321 {
		t.Fatalf("expected 4321 from follower_count, got %v", n)
	}
}

func TestExtractFollowers_DotNested(t *testing.T) {
	payload := map[string]any{
		"public_metrics": map[string]any{"followers_count": float64(250)},
	}
	n := ExtractFollowers(payload, "twitter")
	if n == nil || *n != 250 {
		t.Fatalf("expected nested extraction, got %v", n)
	}
}

func TestExtractFollowers_NumericString(t *testing.T) {
	payload := map[string]any{"subscriber_count": "15000"}
	n := ExtractFollowers(payload, "youtube")
	if n == nil || *n != 15000 {
		t.Fatalf("expected numeric string accepted, got %v", n)
	}
}

func TestExtractFollowers_PlatformSwitch(t *testing.T) {
	// a field only reachable through the per-platform switch
	payload := map[string]any{"followersCount": float64(777)}
	n := ExtractFollowers(payload, "linkedin")
	if n == nil || *n != 777 {
		t.Fatalf("expected linkedin switch fallback, got %v", n)
	}
}

func TestExtractFollowers_NoMatch(t *testing.T) {
	if n := ExtractFollowers(map[string]any{"irrelevant": 5}, "twitch"); n != nil {
		t.Fatalf("expected nil for unmatched payload, got %v", n)
	}
	if n := ExtractFollowers(nil, "twitter"); n != nil {
		t.Fatalf("expected nil for empty payload, got %v", n)
	}
}

func TestExtractFollowers_RejectsNonPositive(t *testing.T) {
	if n := ExtractFollowers(map[string]any{"followers": float64(0)}, "github"); n != nil {
		t.Fatalf("expected zero rejected, got %v", n)
	}
	if n := ExtractFollowers(map[string]any{"followers": "not-a-number"}, "github"); n != nil {
		t.Fatalf("expected non-numeric string rejected, got %v", n)
	}
}
