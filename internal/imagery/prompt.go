package imagery

import (
	"fmt"
	"strings"
)

// PromptData contains inputs for building an illustration prompt.
type PromptData struct {
	Title   string
	Summary string
	Tags    []string
}

const defaultPrompt = `Create a calm, editorial illustration for an article.

Requirements:
- Article title: "%s".
- Article summary: "%s".
- Subject hints: %s.
- Style: soft natural palette, simple composition, no text, no logos, no watermarks.`

// BuildIllustrationPrompt builds a prompt from data, using template if
// provided. Template variables: {Title}, {Summary}, {Tags}
func BuildIllustrationPrompt(d PromptData, template string) string {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = "Untitled article"
	}
	summary := strings.TrimSpace(d.Summary)
	if summary == "" {
		summary = title
	}
	tags := cleanTags(d.Tags, 5)
	tg := strings.Join(tags, ", ")
	if tg == "" {
		tg = "general interest"
	}

	if strings.TrimSpace(template) == "" {
		return fmt.Sprintf(defaultPrompt, title, summary, tg)
	}
	replacer := strings.NewReplacer(
		"{Title}", title,
		"{Summary}", summary,
		"{Tags}", tg,
	)
	return replacer.Replace(template)
}

// SearchQuery derives a short stock-photo query from a title and tags.
// The primary tag is the strongest signal; the title fills in when tags
// are missing.
func SearchQuery(title string, tags []string) string {
	parts := cleanTags(tags, 2)
	if len(parts) == 0 {
		return strings.TrimSpace(title)
	}
	return strings.Join(parts, " ")
}

func cleanTags(tags []string, maxItems int) []string {
	out := make([]string, 0, maxItems)
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
		if len(out) >= maxItems {
			break
		}
	}
	return out
}
