package imagery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// retryBaseDelay controls the base duration for exponential backoff on
// failed downloads. Tests override this to avoid real sleeps.
var retryBaseDelay = 2 * time.Second

const defaultDownloadRetries = 3

// download fetches a URL, retrying transport errors, HTTP 429 and 5xx
// responses with exponential backoff: base, 2×base, 4×base, ... The
// context cancels both requests and backoff waits.
func download(ctx context.Context, client *http.Client, url string, maxRetries int) ([]byte, error) {
	if maxRetries <= 0 {
		maxRetries = defaultDownloadRetries
	}
	for attempt := 0; ; attempt++ {
		data, retryable, err := fetchOnce(ctx, client, url)
		if err == nil {
			return data, nil
		}
		if !retryable || attempt >= maxRetries {
			return nil, fmt.Errorf("download %s: %w", url, err)
		}
		backoff := retryBaseDelay << attempt
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// fetchOnce performs a single GET. Transport errors, 429 and 5xx are
// retryable; other non-200 statuses are not.
func fetchOnce(ctx context.Context, client *http.Client, url string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		io.Copy(io.Discard, resp.Body)
		return nil, true, fmt.Errorf("status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, false, fmt.Errorf("status %d body %s", resp.StatusCode, truncate(string(b), 200))
	}
	data, err := io.ReadAll(resp.Body)
	return data, true, err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
