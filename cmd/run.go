package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sproutpress/internal/redisclient"
	"sproutpress/internal/storage"
	"sproutpress/worker"

	"github.com/spf13/cobra"
)

// runCmd starts one drafting worker per configured channel.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the drafting workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if len(cfg.Channels) == 0 {
			return fmt.Errorf("no channels configured")
		}

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		p, err := newPipeline(cfg, true)
		if err != nil {
			return err
		}

		workers := make([]worker.Worker, 0, len(cfg.Channels))
		for _, ch := range cfg.Channels {
			interval, err := time.ParseDuration(ch.Interval)
			if err != nil {
				return fmt.Errorf("invalid interval for channel %s: %w", ch.Name, err)
			}
			workers = append(workers, &worker.DraftWorker{
				Store:    store,
				Pipeline: p,
				Channel:  ch,
				Interval: interval,
			})
			slog.Info("run: worker configured", "channel", ch.Name, "interval", interval)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m := worker.NewManager(workers...)
		slog.Info("run: starting workers", "count", len(workers))
		return m.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
