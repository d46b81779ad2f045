package model

// Article is one accepted content item as it appears in the site's flat
// JSON index. Dates are kept as the "YYYY-MM-DD" strings the static site
// consumes; parsing happens at comparison time.
type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Summary     string   `json:"summary,omitempty"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
	Date        string   `json:"date"`
	Cover       string   `json:"cover,omitempty"`
	CoverSource string   `json:"cover_source,omitempty"`
	CoverCredit string   `json:"cover_credit,omitempty"`
	Channel     string   `json:"channel,omitempty"`
}

// Draft is a freshly generated, not-yet-accepted article.
type Draft struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Body    string   `json:"body"`
	Tags    []string `json:"tags"`
}

// PrimaryTag returns the first tag, or "" when the draft has none.
func (d Draft) PrimaryTag() string {
	if len(d.Tags) == 0 {
		return ""
	}
	return d.Tags[0]
}
