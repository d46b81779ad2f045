// Package site renders accepted articles as markdown pages and keeps
// the flat JSON index the static HTML site reads.
package site

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Page is a markdown article file with YAML frontmatter.
type Page struct {
	Meta Frontmatter
	Body string
}

// Frontmatter carries the article metadata stored at the top of each
// content file.
type Frontmatter struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	Date        string   `yaml:"date"`
	Summary     string   `yaml:"summary,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Cover       string   `yaml:"cover,omitempty"`
	CoverSource string   `yaml:"cover_source,omitempty"`
	CoverCredit string   `yaml:"cover_credit,omitempty"`
	Channel     string   `yaml:"channel,omitempty"`
}

// ParsePage reads a content file and extracts frontmatter and body.
// Frontmatter sits at the top of the file between two lines containing
// only "---"; a file without it parses as body only.
func ParsePage(path string) (Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return Page{}, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	peek, err := br.Peek(3)
	if err != nil && !errors.Is(err, io.EOF) {
		return Page{}, err
	}
	hasFM := string(peek) == "---"

	var fmBuf strings.Builder
	var bodyBuf strings.Builder

	if hasFM {
		// Consume first line '---' fully
		if _, err := br.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			return Page{}, err
		}
		// Read until next line that is exactly '---'
		for {
			l, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return Page{}, err
			}
			if strings.TrimSpace(l) == "---" {
				break
			}
			fmBuf.WriteString(l)
			if errors.Is(err, io.EOF) {
				break
			}
		}
	}
	for {
		l, err := br.ReadString('\n')
		bodyBuf.WriteString(l)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Page{}, err
		}
	}

	p := Page{Body: strings.TrimLeft(bodyBuf.String(), "\n")}
	if hasFM {
		if err := yaml.Unmarshal([]byte(fmBuf.String()), &p.Meta); err != nil {
			return Page{}, err
		}
	}
	return p, nil
}
