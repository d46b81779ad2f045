// Package history reads and appends the flat JSON article files the
// static site consumes.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sproutpress/internal/model"
)

// Load reads the article list at path. A missing file is an empty
// history, not an error.
func Load(path string) ([]model.Article, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	var articles []model.Article
	if err := json.Unmarshal(b, &articles); err != nil {
		return nil, fmt.Errorf("parse history %s: %w", path, err)
	}
	return articles, nil
}

// Append adds an article to the list at path, creating the file and its
// directory when absent. The file is rewritten via a temp file and
// rename so a crash cannot leave a truncated index behind.
func Append(path string, a model.Article) error {
	articles, err := Load(path)
	if err != nil {
		return err
	}
	articles = append(articles, a)
	return Write(path, articles)
}

// Write replaces the article list at path.
func Write(path string, articles []model.Article) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	b, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}
