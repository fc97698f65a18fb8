package service

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	svc := NewNarrativeService("")

	prompt, err := svc.BuildPrompt("reputation", 72, map[string]any{"reviews": 41}, "Acme Pest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Acme Pest", "72 out of 100", `"reputation"`, `"reviews":41`} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_Validation(t *testing.T) {
	svc := NewNarrativeService("the business")

	if _, err := svc.BuildPrompt("", 50, nil, ""); err == nil {
		t.Fatalf("expected error for empty category")
	}

	t.Run("score clamped", func(t *testing.T) {
		prompt, err := svc.BuildPrompt("seo", 140, nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(prompt, "100 out of 100") {
			t.Fatalf("expected score clamped to 100:\n%s", prompt)
		}

		prompt, err = svc.BuildPrompt("seo", -3, nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(prompt, "0 out of 100") {
			t.Fatalf("expected score clamped to 0:\n%s", prompt)
		}
	})

	t.Run("fallback name and empty blob", func(t *testing.T) {
		prompt, err := svc.BuildPrompt("social", 10, nil, "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(prompt, "the business") {
			t.Fatalf("expected fallback business name:\n%s", prompt)
		}
		if !strings.Contains(prompt, "{}") {
			t.Fatalf("expected empty analysis blob:\n%s", prompt)
		}
	})
}
