// Package novelty screens freshly generated drafts against a rolling
// window of previously published articles, re-prompting the generator
// with an accumulated avoid-list until a sufficiently novel draft is
// produced or attempts run out.
package novelty

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sproutpress/internal/model"
	"sproutpress/internal/textsim"
)

// Generator produces a candidate draft while avoiding the given titles
// and tags. Implementations are external collaborators (typically an LLM
// client); the guard treats them as opaque.
type Generator interface {
	Generate(ctx context.Context, exc Exclusions) (model.Draft, error)
}

// Exclusions is the avoid-list threaded through retry attempts. Values
// are immutable: With returns a copy, so no attempt shares state with
// another.
type Exclusions struct {
	Titles []string
	Tags   []string
}

// With returns a new Exclusions extended by a clashing draft's title and
// primary tag. Empty strings are skipped.
func (e Exclusions) With(title, tag string) Exclusions {
	out := Exclusions{
		Titles: append([]string(nil), e.Titles...),
		Tags:   append([]string(nil), e.Tags...),
	}
	if title != "" {
		out.Titles = append(out.Titles, title)
	}
	if tag != "" {
		out.Tags = append(out.Tags, tag)
	}
	return out
}

// ClashKind names the dimension on which a draft collided with the pool.
type ClashKind string

const (
	ClashTitle ClashKind = "title"
	ClashBody  ClashKind = "body"
)

// Clash describes a single similarity hit against a pool article.
type Clash struct {
	Kind      ClashKind
	PoolTitle string
	Score     float64
}

// ExhaustedError is returned when every permitted attempt produced a
// clashing draft. LastClash carries the final collision for diagnostics.
type ExhaustedError struct {
	Attempts  int
	LastClash Clash
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("novelty exhausted after %d attempts: last clash %s %.3f against %q",
		e.Attempts, e.LastClash.Kind, e.LastClash.Score, e.LastClash.PoolTitle)
}

// GenerationError wraps a generator failure. It is not a novelty clash
// and does not consume a retry attempt.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "generation failed: " + e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }

// Options tunes the guard. Zero values fall back to the defaults below.
type Options struct {
	WindowDays     int
	TitleThreshold float64
	BodyThreshold  float64
	ShingleSize    int
	MaxRetries     int // retries after the initial attempt
	Now            func() time.Time
}

const (
	defaultWindowDays     = 90
	defaultTitleThreshold = 0.4
	defaultBodyThreshold  = 0.28
	defaultMaxRetries     = 3
)

func (o Options) withDefaults() Options {
	if o.WindowDays <= 0 {
		o.WindowDays = defaultWindowDays
	}
	if o.TitleThreshold <= 0 {
		o.TitleThreshold = defaultTitleThreshold
	}
	if o.BodyThreshold <= 0 {
		o.BodyThreshold = defaultBodyThreshold
	}
	if o.ShingleSize <= 0 {
		o.ShingleSize = textsim.DefaultShingleSize
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetries
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Guard runs the generate/screen loop.
type Guard struct {
	opts Options
}

// NewGuard creates a guard with the given options.
func NewGuard(opts Options) *Guard {
	return &Guard{opts: opts.withDefaults()}
}

// Ensure asks gen for drafts until one clears the similarity thresholds
// against the recency-filtered history, or attempts run out. The guard
// itself performs no I/O; the generator call is the only suspension
// point. Generator failures surface immediately as *GenerationError
// without consuming an attempt; exhaustion surfaces as *ExhaustedError.
func (g *Guard) Ensure(ctx context.Context, gen Generator, history []model.Article) (model.Draft, error) {
	pool := SelectPool(history, g.opts.WindowDays, g.opts.Now())
	exc := Exclusions{}

	var last Clash
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return model.Draft{}, err
		}
		attempts++
		draft, err := gen.Generate(ctx, exc)
		if err != nil {
			return model.Draft{}, &GenerationError{Err: err}
		}
		clash, ok := g.Screen(draft, pool)
		if !ok {
			return draft, nil
		}
		last = clash
		slog.Info("novelty: draft clashed",
			"attempt", attempts,
			"kind", clash.Kind,
			"score", clash.Score,
			"against", clash.PoolTitle,
		)
		if attempts > g.opts.MaxRetries {
			return model.Draft{}, &ExhaustedError{Attempts: attempts, LastClash: last}
		}
		exc = exc.With(draft.Title, draft.PrimaryTag())
	}
}

// Screen scans the pool and reports the first clash found. The scan
// short-circuits: it does not rank all collisions, only detects one.
// Body similarity is computed only when the title is below threshold.
func (g *Guard) Screen(draft model.Draft, pool []model.Article) (Clash, bool) {
	for _, a := range pool {
		if s := textsim.TitleSimilarity(draft.Title, a.Title); s >= g.opts.TitleThreshold {
			return Clash{Kind: ClashTitle, PoolTitle: a.Title, Score: s}, true
		}
		if s := textsim.BodySimilarity(draft.Body, a.Body, g.opts.ShingleSize); s >= g.opts.BodyThreshold {
			return Clash{Kind: ClashBody, PoolTitle: a.Title, Score: s}, true
		}
	}
	return Clash{}, false
}
