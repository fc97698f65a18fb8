package service

import (
	"reflect"
	"testing"
)

func TestDeepMerge_Additive(t *testing.T) {
	base := map[string]any{"a": map[string]any{"y": 2}}
	patch := map[string]any{"a": map[string]any{"x": 1}}

	merged, err := DeepMerge(base, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]any{"a": map[string]any{"x": 1, "y": 2}}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("unexpected merge result: %+v", merged)
	}

	// unrelated keys in the base are untouched
	if _, ok := base["a"].(map[string]any)["x"]; ok {
		t.Fatalf("base map was mutated by merge")
	}
}

func TestDeepMerge_Idempotent(t *testing.T) {
	base := map[string]any{
		"scores": map[string]any{"reputation": 72},
		"social": map[string]any{"totalFollowers": float64(1200)},
	}
	patch := map[string]any{
		"scores": map[string]any{"seo": 61},
		"social": map[string]any{"platforms": []any{"twitter", "youtube"}},
	}

	once, err := DeepMerge(base, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := DeepMerge(once, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merge is not idempotent: %+v vs %+v", once, twice)
	}
}

func TestDeepMerge_ArraysReplacedWholesale(t *testing.T) {
	base := map[string]any{"tags": []any{"old", "stale"}}
	patch := map[string]any{"tags": []any{"fresh"}}

	merged, err := DeepMerge(base, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tags, ok := merged["tags"].([]any)
	if !ok || len(tags) != 1 || tags[0] != "fresh" {
		t.Fatalf("expected array replaced wholesale, got %+v", merged["tags"])
	}
}

func TestDeepMerge_ScalarsOverwritten(t *testing.T) {
	base := map[string]any{"status": "pending", "score": 10}
	patch := map[string]any{"status": "complete"}

	merged, err := DeepMerge(base, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged["status"] != "complete" {
		t.Fatalf("expected scalar overwritten, got %v", merged["status"])
	}
	if merged["score"] != 10 {
		t.Fatalf("expected untouched sibling preserved, got %v", merged["score"])
	}
}

func TestDeepMerge_DepthBound(t *testing.T) {
	patch := map[string]any{}
	cursor := patch
	for i := 0; i < maxMergeDepth+1; i++ {
		next := map[string]any{}
		cursor["nested"] = next
		cursor = next
	}

	if _, err := DeepMerge(map[string]any{}, patch); err != ErrPatchTooDeep {
		t.Fatalf("expected ErrPatchTooDeep, got %v", err)
	}
}

func TestDeepMerge_NilBase(t *testing.T) {
	merged, err := DeepMerge(nil, map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged["a"] != 1 {
		t.Fatalf("unexpected result: %+v", merged)
	}
}
