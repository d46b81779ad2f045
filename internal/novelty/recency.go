package novelty

import (
	"time"

	"sproutpress/internal/model"
)

// dateLayout matches the YYYY-MM-DD strings the site index carries.
const dateLayout = "2006-01-02"

// SelectPool returns the articles whose date falls inside the trailing
// window ending at ref: date ≥ ref − windowDays, inclusive. There is no
// upper bound, so future-dated entries stay in the pool. Articles with a
// missing or unparseable date sort to the zero time and fall outside any
// reasonable window.
func SelectPool(history []model.Article, windowDays int, ref time.Time) []model.Article {
	// Floor ref to its UTC date so an article dated exactly windowDays
	// ago stays inside the window regardless of the time of day.
	y, m, d := ref.UTC().Date()
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -windowDays)
	pool := make([]model.Article, 0, len(history))
	for _, a := range history {
		d, err := time.Parse(dateLayout, a.Date)
		if err != nil {
			// Treat bad dates as the zero time: excluded by any
			// reasonable window, never an error.
			d = time.Time{}
		}
		if !d.Before(cutoff) {
			pool = append(pool, a)
		}
	}
	return pool
}
