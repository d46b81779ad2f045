package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sproutpress/internal/history"
	"sproutpress/internal/model"
)

// BuildIndex scans contentDir for markdown pages and rewrites the JSON
// index at indexPath from their frontmatter. Entries sort newest-first
// by date, ties broken by slug, so rebuilds are stable.
func BuildIndex(contentDir, indexPath string) (int, error) {
	entries, err := os.ReadDir(contentDir)
	if err != nil {
		return 0, fmt.Errorf("read content dir: %w", err)
	}
	articles := make([]model.Article, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		path := filepath.Join(contentDir, e.Name())
		page, err := ParsePage(path)
		if err != nil {
			return 0, fmt.Errorf("parse %s: %w", path, err)
		}
		if strings.TrimSpace(page.Meta.Title) == "" {
			// Not an article page; skip drafts and stray files.
			continue
		}
		slug := page.Meta.Slug
		if slug == "" {
			slug = Slugify(page.Meta.Title)
		}
		articles = append(articles, model.Article{
			ID:          page.Meta.ID,
			Title:       page.Meta.Title,
			Slug:        slug,
			Summary:     page.Meta.Summary,
			Body:        page.Body,
			Tags:        page.Meta.Tags,
			Date:        page.Meta.Date,
			Cover:       page.Meta.Cover,
			CoverSource: page.Meta.CoverSource,
			CoverCredit: page.Meta.CoverCredit,
			Channel:     page.Meta.Channel,
		})
	}
	sort.Slice(articles, func(i, j int) bool {
		if articles[i].Date != articles[j].Date {
			return articles[i].Date > articles[j].Date
		}
		return articles[i].Slug < articles[j].Slug
	})
	if err := history.Write(indexPath, articles); err != nil {
		return 0, err
	}
	return len(articles), nil
}
