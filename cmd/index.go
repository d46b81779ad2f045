package cmd

import (
	"fmt"

	"sproutpress/internal/site"

	"github.com/spf13/cobra"
)

// indexCmd rebuilds the JSON index from the content directory.
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the site's JSON index from content frontmatter",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		n, err := site.BuildIndex(cfg.Site.ContentDir, cfg.Site.IndexPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d articles into %s\n", n, cfg.Site.IndexPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
