package ai

import (
	"context"

	"sproutpress/internal/model"
	"sproutpress/internal/novelty"
)

// ChannelGenerator adapts a Drafter to the novelty guard's Generator
// interface for a single channel.
type ChannelGenerator struct {
	Drafter Drafter
	Brief   Brief
}

func (g ChannelGenerator) Generate(ctx context.Context, exc novelty.Exclusions) (model.Draft, error) {
	return g.Drafter.DraftArticle(ctx, g.Brief, exc)
}
