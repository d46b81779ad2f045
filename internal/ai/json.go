package ai

import (
	"encoding/json"
	"errors"
	"strings"

	"sproutpress/internal/model"
)

// ParseDraft decodes a model reply into a draft, tolerating the markdown
// code fences some models wrap JSON in.
func ParseDraft(text string) (model.Draft, error) {
	text = stripFences(strings.TrimSpace(text))
	if text == "" {
		return model.Draft{}, errors.New("empty model response")
	}
	var d model.Draft
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return model.Draft{}, errors.Join(errors.New("model response is not valid JSON"), err)
	}
	if strings.TrimSpace(d.Title) == "" {
		return model.Draft{}, errors.New("model response missing title")
	}
	if strings.TrimSpace(d.Body) == "" {
		return model.Draft{}, errors.New("model response missing body")
	}
	return d, nil
}

func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	endIdx := len(lines) - 1
	for i := len(lines) - 1; i > 0; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			endIdx = i
			break
		}
	}
	return strings.Join(lines[1:endIdx], "\n")
}
