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

// DeepAI generates illustrations via the DeepAI text2img API, which
// returns a hosted URL the image is then downloaded from.
type DeepAI struct {
	baseURL    string
	apiKey     string
	retries    int
	httpClient *http.Client
}

type DeepAIConfig struct {
	BaseURL string
	APIKey  string
	Retries int
	Timeout time.Duration
}

func NewDeepAI(cfg DeepAIConfig) (*DeepAI, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("deepai: api key is required")
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = "https://api.deepai.org"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &DeepAI{
		baseURL:    base,
		apiKey:     cfg.APIKey,
		retries:    cfg.Retries,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type deepAIResponse struct {
	ID        string `json:"id"`
	OutputURL string `json:"output_url"`
	Err       string `json:"err"`
}

func (d *DeepAI) Illustrate(ctx context.Context, req Request) (Image, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return Image{}, errors.New("deepai: prompt is empty")
	}
	form := url.Values{"text": {req.Prompt}}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		d.baseURL+"/api/text2img", strings.NewReader(form.Encode()))
	if err != nil {
		return Image{}, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("api-key", d.apiKey)

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return Image{}, fmt.Errorf("deepai request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return Image{}, fmt.Errorf("deepai status=%d body=%s", resp.StatusCode, truncate(string(b), 200))
	}
	var parsed deepAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Image{}, fmt.Errorf("decode deepai response: %w", err)
	}
	if strings.TrimSpace(parsed.Err) != "" {
		return Image{}, fmt.Errorf("deepai error: %s", parsed.Err)
	}
	if strings.TrimSpace(parsed.OutputURL) == "" {
		return Image{}, errors.New("deepai returned no output_url")
	}
	data, err := download(ctx, d.httpClient, parsed.OutputURL, d.retries)
	if err != nil {
		return Image{}, err
	}
	return Image{Data: data, SourceURL: parsed.OutputURL}, nil
}
