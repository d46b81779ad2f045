package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sproutpress/internal/novelty"

	"github.com/spf13/cobra"
)

var draftNoCover bool

// draftCmd produces one novelty-screened article for a channel.
var draftCmd = &cobra.Command{
	Use:   "draft <channel>",
	Short: "Draft one new article for a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		ch, err := findChannel(cfg, args[0])
		if err != nil {
			return err
		}
		p, err := newPipeline(cfg, !draftNoCover)
		if err != nil {
			return err
		}

		slog.Info("draft: generating article", "channel", ch.Name, "topic", ch.Topic)
		article, err := p.Produce(context.Background(), ch)
		if err != nil {
			var ex *novelty.ExhaustedError
			if errors.As(err, &ex) {
				slog.Error("draft: novelty exhausted",
					"channel", ch.Name,
					"attempts", ex.Attempts,
					"kind", ex.LastClash.Kind,
					"score", ex.LastClash.Score,
					"against", ex.LastClash.PoolTitle,
				)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Drafted: %s (%s)\n", article.Title, article.Slug)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(draftCmd)
	draftCmd.Flags().BoolVar(&draftNoCover, "no-cover", false, "skip illustration fetch/generation")
}
