package cmd

import (
	"fmt"
	"strings"
	"time"

	"sproutpress/internal/ai"
	"sproutpress/internal/config"
	"sproutpress/internal/imagery"
	"sproutpress/internal/novelty"
	"sproutpress/internal/pipeline"
)

// findChannel looks up a configured channel by name.
func findChannel(cfg config.Config, name string) (config.ChannelConfig, error) {
	for _, ch := range cfg.Channels {
		if ch.Name == name {
			return ch, nil
		}
	}
	return config.ChannelConfig{}, fmt.Errorf("channel not found: %s", name)
}

// newGuard builds the novelty guard from config.
func newGuard(cfg config.Config) *novelty.Guard {
	return novelty.NewGuard(novelty.Options{
		WindowDays:     cfg.Novelty.WindowDays,
		TitleThreshold: cfg.Novelty.TitleThreshold,
		BodyThreshold:  cfg.Novelty.BodyThreshold,
		ShingleSize:    cfg.Novelty.ShingleSize,
		MaxRetries:     cfg.Novelty.MaxRetries,
	})
}

// newDrafter builds the OpenAI drafter, or errors if no key is set.
func newDrafter(cfg config.Config) (ai.Drafter, error) {
	if strings.TrimSpace(cfg.OpenAI.APIKey) == "" {
		return nil, fmt.Errorf("openai.api_key missing: set it in config.yaml")
	}
	return ai.NewOpenAI(ai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	}), nil
}

// newImageProvider builds the configured illustration provider. Returns
// nil when the provider is unset or missing credentials, so callers can
// skip covers instead of failing the draft.
func newImageProvider(cfg config.Config) (imagery.Provider, error) {
	timeout, err := time.ParseDuration(cfg.Images.DownloadTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid images.download_timeout: %w", err)
	}
	retries := cfg.Images.DownloadRetries
	switch imagery.Name(cfg.Images.Provider) {
	case "openai":
		if strings.TrimSpace(cfg.OpenAI.APIKey) == "" {
			return nil, nil
		}
		return imagery.NewOpenAIImages(imagery.OpenAIImagesConfig{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.ImageModel,
			BaseURL: cfg.OpenAI.BaseURL,
		})
	case "deepai":
		if strings.TrimSpace(cfg.Images.DeepAI.APIKey) == "" {
			return nil, nil
		}
		return imagery.NewDeepAI(imagery.DeepAIConfig{
			BaseURL: cfg.Images.DeepAI.BaseURL,
			APIKey:  cfg.Images.DeepAI.APIKey,
			Retries: retries,
			Timeout: timeout,
		})
	case "pixabay":
		if strings.TrimSpace(cfg.Images.Pixabay.APIKey) == "" {
			return nil, nil
		}
		return imagery.NewPixabay(imagery.PixabayConfig{
			BaseURL: cfg.Images.Pixabay.BaseURL,
			APIKey:  cfg.Images.Pixabay.APIKey,
			Retries: retries,
			Timeout: timeout,
		})
	case "openverse":
		return imagery.NewOpenverse(imagery.OpenverseConfig{
			BaseURL: cfg.Images.Openverse.BaseURL,
			Retries: retries,
			Timeout: timeout,
		}), nil
	case "", "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown images.provider: %s", cfg.Images.Provider)
	}
}

// newPipeline assembles the full production pipeline from config.
func newPipeline(cfg config.Config, withCover bool) (*pipeline.Pipeline, error) {
	drafter, err := newDrafter(cfg)
	if err != nil {
		return nil, err
	}
	var provider imagery.Provider
	if withCover {
		provider, err = newImageProvider(cfg)
		if err != nil {
			return nil, err
		}
	}
	return &pipeline.Pipeline{
		Drafter:        drafter,
		Guard:          newGuard(cfg),
		Provider:       provider,
		ContentDir:     cfg.Site.ContentDir,
		IndexPath:      cfg.Site.IndexPath,
		ImagesDir:      cfg.Images.OutputDir,
		WebPQuality:    cfg.Images.WebPQuality,
		PromptTemplate: cfg.Images.PromptTemplate,
	}, nil
}
