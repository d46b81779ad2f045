// Package imagery fetches or generates illustration images from
// third-party providers and saves them as WebP for the static site.
package imagery

import (
	"context"
	"strings"
)

// Request describes the illustration wanted for an article. Generative
// providers use Prompt; search providers use Query.
type Request struct {
	Prompt string
	Query  string
}

// Image is a fetched or generated illustration. Credit and SourceURL are
// populated by search providers for attribution; generative providers
// leave them empty.
type Image struct {
	Data      []byte
	SourceURL string
	Credit    string
}

// Provider returns one illustration for a request.
type Provider interface {
	Illustrate(ctx context.Context, req Request) (Image, error)
}

// Name normalizes a configured provider name.
func Name(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
