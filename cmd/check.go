package cmd

import (
	"fmt"
	"time"

	"sproutpress/internal/history"
	"sproutpress/internal/model"
	"sproutpress/internal/novelty"
	"sproutpress/internal/site"

	"github.com/spf13/cobra"
)

// checkCmd screens an existing markdown file against the index without
// generating anything. Useful for vetting hand-written drafts.
var checkCmd = &cobra.Command{
	Use:   "check <markdown_path>",
	Short: "Screen a markdown draft against recent articles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		page, err := site.ParsePage(args[0])
		if err != nil {
			return err
		}
		if page.Meta.Title == "" {
			return fmt.Errorf("%s has no title in frontmatter", args[0])
		}
		articles, err := history.Load(cfg.Site.IndexPath)
		if err != nil {
			return err
		}
		guard := newGuard(cfg)
		pool := novelty.SelectPool(articles, cfg.Novelty.WindowDays, time.Now())
		draft := model.Draft{Title: page.Meta.Title, Body: page.Body, Tags: page.Meta.Tags}
		if clash, ok := guard.Screen(draft, pool); ok {
			return fmt.Errorf("clash: %s similarity %.3f against %q", clash.Kind, clash.Score, clash.PoolTitle)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Novel against %d recent articles.\n", len(pool))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
