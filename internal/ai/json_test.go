package ai

import (
	"testing"
)

func TestParseDraftPlainJSON(t *testing.T) {
	d, err := ParseDraft(`{"title":"Repotting Basics","summary":"s","body":"b","tags":["plants","soil"]}`)
	if err != nil {
		t.Fatalf("ParseDraft error: %v", err)
	}
	if d.Title != "Repotting Basics" {
		t.Errorf("title mismatch: %q", d.Title)
	}
	if d.PrimaryTag() != "plants" {
		t.Errorf("primary tag mismatch: %q", d.PrimaryTag())
	}
}

func TestParseDraftFencedJSON(t *testing.T) {
	in := "```json\n{\"title\":\"T\",\"body\":\"B\",\"tags\":[]}\n```"
	d, err := ParseDraft(in)
	if err != nil {
		t.Fatalf("ParseDraft error: %v", err)
	}
	if d.Title != "T" || d.Body != "B" {
		t.Errorf("unexpected draft: %+v", d)
	}
	if d.PrimaryTag() != "" {
		t.Errorf("expected empty primary tag, got %q", d.PrimaryTag())
	}
}

func TestParseDraftRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not json at all", `{"summary":"only"}`, `{"title":"T"}`} {
		if _, err := ParseDraft(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}
