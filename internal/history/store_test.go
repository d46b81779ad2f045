package history

import (
	"os"
	"path/filepath"
	"testing"

	"sproutpress/internal/model"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	articles, err := Load(filepath.Join(t.TempDir(), "articles.json"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(articles) != 0 {
		t.Fatalf("expected empty history, got %d", len(articles))
	}
}

func TestAppendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "articles.json")
	first := model.Article{ID: "a1", Title: "First", Slug: "first", Date: "2026-01-02", Tags: []string{"x"}}
	second := model.Article{ID: "a2", Title: "Second", Slug: "second", Date: "2026-01-03"}

	if err := Append(path, first); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := Append(path, second); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	articles, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].Title != "First" || articles[1].Title != "Second" {
		t.Fatalf("order not preserved: %+v", articles)
	}
	// No temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed history file")
	}
}
