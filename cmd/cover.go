package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"sproutpress/internal/history"
	"sproutpress/internal/imagery"
	"sproutpress/internal/redisclient"
	"sproutpress/internal/site"
	"sproutpress/internal/storage"

	"github.com/spf13/cobra"
)

var coverForce bool

// coverCmd fetches or generates an illustration for an existing article
// and updates both the content file and the index.
var coverCmd = &cobra.Command{
	Use:   "cover <slug>",
	Short: "Fetch or generate the illustration for an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]
		cfg := GetConfig()

		articles, err := history.Load(cfg.Site.IndexPath)
		if err != nil {
			return err
		}
		idx := -1
		for i := range articles {
			if articles[i].Slug == slug {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("article not found in index: %s", slug)
		}
		article := articles[idx]

		outPath := filepath.Join(cfg.Images.OutputDir, slug+".webp")
		if !coverForce {
			if _, err := os.Stat(outPath); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Cover already exists: %s (use --force to refetch)\n", outPath)
				return nil
			}
		}

		provider, err := newImageProvider(cfg)
		if err != nil {
			return err
		}
		if provider == nil {
			return fmt.Errorf("no image provider configured: set images.provider and its credentials")
		}

		// Best-effort cache of the last source URL per slug, so a
		// re-run after a crash can report what was used before.
		var store *storage.RedisStore
		if strings.TrimSpace(cfg.Redis.Addr) != "" {
			rdb := redisclient.New(cfg.Redis)
			defer rdb.Close()
			store = storage.NewRedisStore(rdb)
			ctxGet, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if cached, err := store.GetIllustrationURL(ctxGet, slug); err == nil && cached != "" {
				slog.Info("cover: previous illustration source", "slug", slug, "url", cached)
			}
			cancel()
		}

		ctx := context.Background()
		img, err := provider.Illustrate(ctx, imagery.Request{
			Prompt: imagery.BuildIllustrationPrompt(imagery.PromptData{
				Title:   article.Title,
				Summary: article.Summary,
				Tags:    article.Tags,
			}, cfg.Images.PromptTemplate),
			Query: imagery.SearchQuery(article.Title, article.Tags),
		})
		if err != nil {
			return err
		}
		if err := imagery.SaveWebP(img.Data, outPath, cfg.Images.WebPQuality); err != nil {
			return err
		}
		if store != nil && img.SourceURL != "" {
			ctxSet, cancel := context.WithTimeout(ctx, 2*time.Second)
			if err := store.SetIllustrationURL(ctxSet, slug, img.SourceURL, 30*24*time.Hour); err != nil {
				slog.Warn("cover: cache source url failed", "err", err)
			}
			cancel()
		}

		article.Cover = path.Join("images", slug+".webp")
		article.CoverSource = img.SourceURL
		article.CoverCredit = img.Credit
		articles[idx] = article
		if err := history.Write(cfg.Site.IndexPath, articles); err != nil {
			return err
		}
		// Re-render the content file so its frontmatter matches the index.
		content, err := site.Render(article)
		if err != nil {
			return err
		}
		mdPath := filepath.Join(cfg.Site.ContentDir, slug+".md")
		if err := os.WriteFile(mdPath, []byte(content), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cover saved: %s\n", outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coverCmd)
	coverCmd.Flags().BoolVar(&coverForce, "force", false, "refetch even if a cover file exists")
}
