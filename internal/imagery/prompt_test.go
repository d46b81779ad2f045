package imagery

import (
	"strings"
	"testing"
)

func TestBuildIllustrationPromptDefault(t *testing.T) {
	p := BuildIllustrationPrompt(PromptData{
		Title:   "Repotting a Monstera",
		Summary: "When and how to move a monstera to a bigger pot.",
		Tags:    []string{"monstera", "repotting"},
	}, "")
	for _, want := range []string{"Repotting a Monstera", "bigger pot", "monstera, repotting"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q:\n%s", want, p)
		}
	}
}

func TestBuildIllustrationPromptTemplate(t *testing.T) {
	p := BuildIllustrationPrompt(PromptData{Title: "T", Summary: "S", Tags: []string{"a", "b"}},
		"paint {Title} / {Summary} / {Tags}")
	if p != "paint T / S / a, b" {
		t.Fatalf("unexpected prompt: %q", p)
	}
}

func TestSearchQuery(t *testing.T) {
	if q := SearchQuery("Understanding Deductibles", []string{"insurance", "deductibles", "money"}); q != "insurance deductibles" {
		t.Errorf("unexpected query: %q", q)
	}
	if q := SearchQuery("Fallback Title", nil); q != "Fallback Title" {
		t.Errorf("expected title fallback, got %q", q)
	}
}
