package worker

import (
	"context"
	"errors"
	"log"
	"time"

	"sproutpress/internal/config"
	"sproutpress/internal/novelty"
	"sproutpress/internal/pipeline"
	"sproutpress/internal/storage"
)

// DraftWorker produces at most one article per channel per period. The
// drafted marker in Redis survives restarts, so a crashed run does not
// double-publish a period.
type DraftWorker struct {
	Store    *storage.RedisStore
	Pipeline *pipeline.Pipeline
	Channel  config.ChannelConfig
	Interval time.Duration // how often to check the period
}

func (w *DraftWorker) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = time.Hour
	}
	// run immediately then on interval
	w.runOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *DraftWorker) runOnce(ctx context.Context) {
	period := periodKey(time.Now().UTC())
	drafted, err := w.Store.IsDrafted(ctx, w.Channel.Name, period)
	if err != nil {
		log.Printf("worker: drafted-check err channel=%s err=%v", w.Channel.Name, err)
		return
	}
	if drafted {
		return
	}

	article, err := w.Pipeline.Produce(ctx, w.Channel)
	if err != nil {
		var ex *novelty.ExhaustedError
		if errors.As(err, &ex) {
			// Every attempt clashed; the topic pool is saturated for
			// now. Mark the period so the next tick doesn't burn more
			// generation calls on it.
			log.Printf("worker: novelty exhausted channel=%s attempts=%d kind=%s against=%q",
				w.Channel.Name, ex.Attempts, ex.LastClash.Kind, ex.LastClash.PoolTitle)
			if err := w.Store.MarkDrafted(ctx, w.Channel.Name, period); err != nil {
				log.Printf("worker: mark drafted err channel=%s err=%v", w.Channel.Name, err)
			}
			return
		}
		log.Printf("worker: draft err channel=%s err=%v", w.Channel.Name, err)
		return
	}
	if err := w.Store.MarkDrafted(ctx, w.Channel.Name, period); err != nil {
		log.Printf("worker: mark drafted err channel=%s err=%v", w.Channel.Name, err)
		return
	}
	log.Printf("worker: published channel=%s slug=%s", w.Channel.Name, article.Slug)
}

func periodKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
