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

// Openverse searches openly licensed images via the Openverse API. No
// key is required for anonymous, rate-limited access.
type Openverse struct {
	baseURL    string
	retries    int
	httpClient *http.Client
}

type OpenverseConfig struct {
	BaseURL string
	Retries int
	Timeout time.Duration
}

func NewOpenverse(cfg OpenverseConfig) *Openverse {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = "https://api.openverse.org"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Openverse{
		baseURL:    base,
		retries:    cfg.Retries,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type openverseResponse struct {
	ResultCount int `json:"result_count"`
	Results     []struct {
		URL        string `json:"url"`
		ForeignURL string `json:"foreign_landing_url"`
		Creator    string `json:"creator"`
		License    string `json:"license"`
	} `json:"results"`
}

func (o *Openverse) Illustrate(ctx context.Context, req Request) (Image, error) {
	if strings.TrimSpace(req.Query) == "" {
		return Image{}, errors.New("openverse: query is empty")
	}
	q := url.Values{}
	q.Set("q", req.Query)
	q.Set("page_size", "3")
	q.Set("license_type", "commercial")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		o.baseURL+"/v1/images/?"+q.Encode(), nil)
	if err != nil {
		return Image{}, err
	}
	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return Image{}, fmt.Errorf("openverse request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return Image{}, fmt.Errorf("openverse status=%d body=%s", resp.StatusCode, truncate(string(b), 200))
	}
	var parsed openverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Image{}, fmt.Errorf("decode openverse response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return Image{}, fmt.Errorf("openverse: no results for %q", req.Query)
	}
	r := parsed.Results[0]
	data, err := download(ctx, o.httpClient, r.URL, o.retries)
	if err != nil {
		return Image{}, err
	}
	credit := r.Creator
	if r.License != "" {
		credit = strings.TrimSpace(credit + " (" + r.License + ")")
	}
	return Image{Data: data, SourceURL: r.ForeignURL, Credit: credit}, nil
}
