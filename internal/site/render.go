package site

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"sproutpress/internal/model"
)

//go:embed article.tmpl
var articleTpl string

var compiled = template.Must(template.New("article").Parse(articleTpl))

// Render produces the markdown content file for an article.
func Render(a model.Article) (string, error) {
	// Keep multi-line summaries valid inside the YAML block scalar.
	a.Summary = strings.Join(strings.Fields(a.Summary), " ")
	a.Title = strings.ReplaceAll(a.Title, `"`, `'`)
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, a); err != nil {
		return "", err
	}
	return buf.String(), nil
}
