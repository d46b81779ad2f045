package imagery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Pixabay searches stock photos via the Pixabay API.
type Pixabay struct {
	baseURL    string
	apiKey     string
	retries    int
	httpClient *http.Client
}

type PixabayConfig struct {
	BaseURL string
	APIKey  string
	Retries int
	Timeout time.Duration
}

func NewPixabay(cfg PixabayConfig) (*Pixabay, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("pixabay: api key is required")
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = "https://pixabay.com/api/"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Pixabay{
		baseURL:    base,
		apiKey:     cfg.APIKey,
		retries:    cfg.Retries,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type pixabayResponse struct {
	TotalHits int `json:"totalHits"`
	Hits      []struct {
		LargeImageURL string `json:"largeImageURL"`
		PageURL       string `json:"pageURL"`
		User          string `json:"user"`
	} `json:"hits"`
}

func (p *Pixabay) Illustrate(ctx context.Context, req Request) (Image, error) {
	if strings.TrimSpace(req.Query) == "" {
		return Image{}, errors.New("pixabay: query is empty")
	}
	q := url.Values{}
	q.Set("key", p.apiKey)
	q.Set("q", req.Query)
	q.Set("image_type", "photo")
	q.Set("safesearch", "true")
	q.Set("per_page", "3")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Image{}, err
	}
	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return Image{}, fmt.Errorf("pixabay request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return Image{}, fmt.Errorf("pixabay status=%d body=%s", resp.StatusCode, truncate(string(b), 200))
	}
	var parsed pixabayResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Image{}, fmt.Errorf("decode pixabay response: %w", err)
	}
	if len(parsed.Hits) == 0 {
		return Image{}, fmt.Errorf("pixabay: no results for %q", req.Query)
	}
	hit := parsed.Hits[0]
	data, err := download(ctx, p.httpClient, hit.LargeImageURL, p.retries)
	if err != nil {
		return Image{}, err
	}
	return Image{Data: data, SourceURL: hit.PageURL, Credit: hit.User}, nil
}
