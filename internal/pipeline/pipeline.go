// Package pipeline runs one full article production pass: guarded
// drafting, illustration, markdown output, and index append.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"sproutpress/internal/ai"
	"sproutpress/internal/config"
	"sproutpress/internal/history"
	"sproutpress/internal/imagery"
	"sproutpress/internal/model"
	"sproutpress/internal/novelty"
	"sproutpress/internal/site"
)

// Pipeline wires the drafter, guard and illustration provider to the
// site's content and data files. Provider may be nil to skip covers.
type Pipeline struct {
	Drafter        ai.Drafter
	Guard          *novelty.Guard
	Provider       imagery.Provider
	ContentDir     string
	IndexPath      string
	ImagesDir      string
	WebPQuality    int
	PromptTemplate string
}

// Produce drafts one novel article for the channel and writes all site
// outputs. Cover failures are logged and skipped; the article is still
// published without one.
func (p *Pipeline) Produce(ctx context.Context, ch config.ChannelConfig) (model.Article, error) {
	hist, err := history.Load(p.IndexPath)
	if err != nil {
		return model.Article{}, err
	}

	now := time.Now().UTC()
	gen := ai.ChannelGenerator{
		Drafter: p.Drafter,
		Brief: ai.Brief{
			Topic:    ch.Topic,
			Language: ch.Language,
			SeedTags: ch.Tags,
			Extra:    site.ExpandVars(ch.Prompt, ch.Topic, now),
		},
	}
	draft, err := p.Guard.Ensure(ctx, gen, hist)
	if err != nil {
		return model.Article{}, err
	}

	slug := site.Slugify(draft.Title)
	article := model.Article{
		ID:      now.Format("20060102") + "-" + slug,
		Title:   draft.Title,
		Slug:    slug,
		Summary: draft.Summary,
		Body:    draft.Body,
		Tags:    draft.Tags,
		Date:    now.Format("2006-01-02"),
		Channel: ch.Name,
	}

	if p.Provider != nil {
		p.illustrate(ctx, &article)
	}

	content, err := site.Render(article)
	if err != nil {
		return model.Article{}, err
	}
	if err := os.MkdirAll(p.ContentDir, 0o755); err != nil {
		return model.Article{}, err
	}
	outPath := filepath.Join(p.ContentDir, slug+".md")
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return model.Article{}, fmt.Errorf("write article: %w", err)
	}
	if err := history.Append(p.IndexPath, article); err != nil {
		return model.Article{}, err
	}
	slog.Info("pipeline: article published",
		"channel", ch.Name,
		"slug", slug,
		"path", outPath,
	)
	return article, nil
}

// illustrate fetches or generates a cover and fills in the article's
// cover fields. Best-effort only.
func (p *Pipeline) illustrate(ctx context.Context, article *model.Article) {
	img, err := p.Provider.Illustrate(ctx, imagery.Request{
		Prompt: imagery.BuildIllustrationPrompt(imagery.PromptData{
			Title:   article.Title,
			Summary: article.Summary,
			Tags:    article.Tags,
		}, p.PromptTemplate),
		Query: imagery.SearchQuery(article.Title, article.Tags),
	})
	if err != nil {
		slog.Warn("pipeline: illustration failed", "slug", article.Slug, "err", err)
		return
	}
	outPath := filepath.Join(p.ImagesDir, article.Slug+".webp")
	if err := imagery.SaveWebP(img.Data, outPath, p.WebPQuality); err != nil {
		slog.Warn("pipeline: cover save failed", "slug", article.Slug, "err", err)
		return
	}
	article.Cover = path.Join("images", article.Slug+".webp")
	article.CoverSource = img.SourceURL
	article.CoverCredit = img.Credit
}
