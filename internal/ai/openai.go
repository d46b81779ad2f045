package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sproutpress/internal/model"
	"sproutpress/internal/novelty"

	openai "github.com/sashabaranov/go-openai"
)

// Brief describes what a channel wants drafted.
type Brief struct {
	Topic    string
	Language string
	SeedTags []string
	Extra    string // additional instructions from config, already expanded
}

// Drafter produces article drafts for a brief while avoiding the given
// titles and tags.
type Drafter interface {
	DraftArticle(ctx context.Context, brief Brief, exc novelty.Exclusions) (model.Draft, error)
}

// OpenAIClient implements Drafter using the OpenAI Chat Completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAI(cfg Config) *OpenAIClient {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		panic("OpenAI model must be specified")
	}
	return &OpenAIClient{client: c, model: model}
}

// DraftArticle asks the model for one article as JSON. The avoid-list is
// spelled out in the user prompt so retries steer away from prior
// clashes.
func (o *OpenAIClient) DraftArticle(ctx context.Context, brief Brief, exc novelty.Exclusions) (model.Draft, error) {
	// set timeout to 300s for a full article draft
	ctx, cancel := context.WithTimeout(ctx, 300*time.Second)
	defer cancel()

	sys := fmt.Sprintf(`
		You are a staff writer for a static reference site about %s.
		Write in %s, for a general audience, in a warm and practical voice.
		Respond with a single JSON object and nothing else, with keys:
		"title" (string, under 70 characters),
		"summary" (string, 1-2 sentences),
		"body" (string, 600-1000 words of Markdown),
		"tags" (array of 2-5 short lowercase strings).
		`, brief.Topic, langOrDefault(brief.Language))

	b := &strings.Builder{}
	fmt.Fprintf(b, "Write one new article about %s.\n", brief.Topic)
	if len(brief.SeedTags) > 0 {
		fmt.Fprintf(b, "Themes to draw tags from: %s.\n", strings.Join(brief.SeedTags, ", "))
	}
	if strings.TrimSpace(brief.Extra) != "" {
		fmt.Fprintf(b, "%s\n", strings.TrimSpace(brief.Extra))
	}
	if len(exc.Titles) > 0 {
		fmt.Fprintf(b, "Do NOT reuse or closely paraphrase any of these titles:\n")
		for _, t := range exc.Titles {
			fmt.Fprintf(b, "- %s\n", t)
		}
	}
	if len(exc.Tags) > 0 {
		fmt.Fprintf(b, "Avoid these already-covered angles: %s.\n", strings.Join(exc.Tags, ", "))
	}

	out, err := o.create(ctx, sys, b.String())
	if err != nil {
		slog.Error("openai: draft article error", "topic", brief.Topic, "err", err)
		return model.Draft{}, err
	}
	draft, err := ParseDraft(out)
	if err != nil {
		slog.Error("openai: draft parse error", "topic", brief.Topic, "err", err)
		return model.Draft{}, err
	}
	return draft, nil
}

func (o *OpenAIClient) create(ctx context.Context, system, user string) (string, error) {
	// Default timeout guard, if caller didn't set one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 300*time.Second)
		defer cancel()
	}
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.8,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func langOrDefault(lang string) string {
	l := strings.TrimSpace(lang)
	if l == "" {
		return "English"
	}
	return l
}
