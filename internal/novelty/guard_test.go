package novelty

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"sproutpress/internal/model"
)

// scriptedGenerator returns drafts in sequence and records the exclusions
// it was handed on each call.
type scriptedGenerator struct {
	drafts []model.Draft
	err    error
	calls  int
	seen   []Exclusions
}

func (g *scriptedGenerator) Generate(_ context.Context, exc Exclusions) (model.Draft, error) {
	g.calls++
	g.seen = append(g.seen, exc)
	if g.err != nil {
		return model.Draft{}, g.err
	}
	i := g.calls - 1
	if i >= len(g.drafts) {
		i = len(g.drafts) - 1
	}
	return g.drafts[i], nil
}

func today() string { return time.Now().UTC().Format("2006-01-02") }

func testGuard() *Guard {
	return NewGuard(Options{})
}

func TestEmptyHistoryAcceptsFirstAttempt(t *testing.T) {
	gen := &scriptedGenerator{drafts: []model.Draft{{Title: "Anything Goes", Body: "short body"}}}
	draft, err := testGuard().Ensure(context.Background(), gen, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Title != "Anything Goes" {
		t.Fatalf("wrong draft returned: %+v", draft)
	}
	if gen.calls != 1 {
		t.Fatalf("expected 1 generator call, got %d", gen.calls)
	}
}

func TestTitleClashTriggersRetry(t *testing.T) {
	history := []model.Article{{
		Title: "Understanding Deductibles",
		Body:  "<p>word1 word2 word3 word4 word5 word6</p>",
		Date:  today(),
	}}
	gen := &scriptedGenerator{drafts: []model.Draft{
		{Title: "Understanding Deductibles Today", Body: "completely different words here", Tags: []string{"deductibles"}},
		{Title: "Flood Coverage Basics", Body: "completely different words here"},
	}}
	draft, err := testGuard().Ensure(context.Background(), gen, history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Title != "Flood Coverage Basics" {
		t.Fatalf("expected second draft accepted, got %+v", draft)
	}
	if gen.calls != 2 {
		t.Fatalf("expected 2 generator calls, got %d", gen.calls)
	}
	// The retry must carry the clashing title and primary tag.
	second := gen.seen[1]
	if len(second.Titles) != 1 || second.Titles[0] != "Understanding Deductibles Today" {
		t.Errorf("exclusion titles wrong: %+v", second.Titles)
	}
	if len(second.Tags) != 1 || second.Tags[0] != "deductibles" {
		t.Errorf("exclusion tags wrong: %+v", second.Tags)
	}
	// The first call must have seen no exclusions.
	if len(gen.seen[0].Titles) != 0 || len(gen.seen[0].Tags) != 0 {
		t.Errorf("first attempt should carry empty exclusions: %+v", gen.seen[0])
	}
}

func TestExhaustionAfterBoundedAttempts(t *testing.T) {
	history := []model.Article{{Title: "Understanding Deductibles", Body: "irrelevant", Date: today()}}
	gen := &scriptedGenerator{drafts: []model.Draft{
		{Title: "Understanding Deductibles Again", Body: "x"},
	}}
	_, err := testGuard().Ensure(context.Background(), gen, history)
	var ex *ExhaustedError
	if !errors.As(err, &ex) {
		t.Fatalf("expected ExhaustedError, got %v", err)
	}
	// Initial attempt plus 3 retries, never more.
	if gen.calls != 4 {
		t.Fatalf("expected exactly 4 generator calls, got %d", gen.calls)
	}
	if ex.LastClash.Kind != ClashTitle {
		t.Errorf("expected title clash, got %q", ex.LastClash.Kind)
	}
	if ex.LastClash.PoolTitle != "Understanding Deductibles" {
		t.Errorf("clash should name the pool article, got %q", ex.LastClash.PoolTitle)
	}
	if ex.LastClash.Score < 0.4 {
		t.Errorf("clash score below threshold: %v", ex.LastClash.Score)
	}
}

func TestGenerationFailurePropagatesWithoutRetry(t *testing.T) {
	gen := &scriptedGenerator{err: fmt.Errorf("model unavailable")}
	_, err := testGuard().Ensure(context.Background(), gen, nil)
	var ge *GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("generator failure must not be retried, got %d calls", gen.calls)
	}
}

func TestBodyClashDetected(t *testing.T) {
	shared := strings.Repeat("premiums rise when claims are frequent and severe ", 10)
	history := []model.Article{{Title: "Why Premiums Go Up", Body: shared, Date: today()}}
	gen := &scriptedGenerator{drafts: []model.Draft{
		{Title: "A Totally Different Headline", Body: shared},
	}}
	_, err := testGuard().Ensure(context.Background(), gen, history)
	var ex *ExhaustedError
	if !errors.As(err, &ex) {
		t.Fatalf("expected ExhaustedError, got %v", err)
	}
	if ex.LastClash.Kind != ClashBody {
		t.Fatalf("expected body clash, got %q", ex.LastClash.Kind)
	}
}

func TestScreenShortCircuitsOnFirstClash(t *testing.T) {
	history := []model.Article{
		{Title: "Understanding Deductibles", Body: "a", Date: today()},
		{Title: "Understanding Deductibles Fully", Body: "b", Date: today()},
	}
	g := testGuard()
	pool := SelectPool(history, g.opts.WindowDays, time.Now())
	clash, ok := g.Screen(model.Draft{Title: "Understanding Deductibles Today", Body: "c"}, pool)
	if !ok {
		t.Fatal("expected a clash")
	}
	// First pool member wins; the scan does not look for the worst match.
	if clash.PoolTitle != "Understanding Deductibles" {
		t.Fatalf("expected first match to win, got %q", clash.PoolTitle)
	}
}

func TestOldHistoryOutsideWindowIgnored(t *testing.T) {
	old := time.Now().UTC().AddDate(0, 0, -120).Format("2006-01-02")
	history := []model.Article{{Title: "Understanding Deductibles", Body: "x", Date: old}}
	gen := &scriptedGenerator{drafts: []model.Draft{
		{Title: "Understanding Deductibles Today", Body: "fresh words entirely"},
	}}
	draft, err := testGuard().Ensure(context.Background(), gen, history)
	if err != nil {
		t.Fatalf("article outside window must not clash: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected acceptance on first attempt, got %d calls", gen.calls)
	}
	if draft.Title == "" {
		t.Fatal("empty draft returned")
	}
}

func TestCancelledContextStopsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gen := &scriptedGenerator{drafts: []model.Draft{{Title: "x", Body: "y"}}}
	_, err := testGuard().Ensure(ctx, gen, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("generator should not run after cancellation, got %d calls", gen.calls)
	}
}
