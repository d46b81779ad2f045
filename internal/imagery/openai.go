package imagery

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIImages generates illustrations via the OpenAI Images API.
type OpenAIImages struct {
	client *openai.Client
	model  string
}

type OpenAIImagesConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAIImages(cfg OpenAIImagesConfig) (*OpenAIImages, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("openai images: api key is required")
	}
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = openai.CreateImageModelDallE3
	}
	return &OpenAIImages{client: c, model: model}, nil
}

func (o *OpenAIImages) Illustrate(ctx context.Context, req Request) (Image, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return Image{}, errors.New("openai images: prompt is empty")
	}
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	start := time.Now()
	resp, err := o.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          o.model,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return Image{}, err
	}
	if len(resp.Data) == 0 || strings.TrimSpace(resp.Data[0].B64JSON) == "" {
		return Image{}, errors.New("openai images: empty image data")
	}
	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return Image{}, err
	}
	slog.Info("imagery: openai image generated", "model", o.model, "bytes", len(raw), "duration", time.Since(start))
	return Image{Data: raw}, nil
}
