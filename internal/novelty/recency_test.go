package novelty

import (
	"testing"
	"time"

	"sproutpress/internal/model"
)

func TestSelectPoolWindowBoundary(t *testing.T) {
	ref := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	onEdge := ref.AddDate(0, 0, -90).Format("2006-01-02")
	justOut := ref.AddDate(0, 0, -91).Format("2006-01-02")
	history := []model.Article{
		{Title: "on the edge", Date: onEdge},
		{Title: "one day too old", Date: justOut},
	}
	pool := SelectPool(history, 90, ref)
	if len(pool) != 1 {
		t.Fatalf("expected 1 article in pool, got %d", len(pool))
	}
	if pool[0].Title != "on the edge" {
		t.Fatalf("wrong article selected: %q", pool[0].Title)
	}
}

func TestSelectPoolBadDatesExcluded(t *testing.T) {
	ref := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	history := []model.Article{
		{Title: "no date"},
		{Title: "garbage date", Date: "soon"},
		{Title: "recent", Date: ref.Format("2006-01-02")},
	}
	pool := SelectPool(history, 90, ref)
	if len(pool) != 1 || pool[0].Title != "recent" {
		t.Fatalf("expected only the dated article, got %+v", pool)
	}
}

func TestSelectPoolFutureDatesIncluded(t *testing.T) {
	ref := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	history := []model.Article{
		{Title: "scheduled", Date: ref.AddDate(0, 0, 7).Format("2006-01-02")},
	}
	if pool := SelectPool(history, 90, ref); len(pool) != 1 {
		t.Fatalf("future-dated article should stay in pool, got %+v", pool)
	}
}
