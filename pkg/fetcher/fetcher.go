// Package fetcher retrieves raw HTML over plain HTTP, for static pages
// that do not need a rendering browser.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/suenkler-ai/scraper-summarizer/pkg/browser"
)

type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// FetchHTML downloads the page body. Failures map onto the same taxonomy
// the browser engine uses, so callers handle both engines uniformly.
func (f *Fetcher) FetchHTML(ctx context.Context, encodedURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, encodedURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", browser.ErrNetwork, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("DNT", "1")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", browser.ErrFetchTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", browser.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", browser.ErrNetwork, resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %v", browser.ErrNetwork, err)
	}
	return string(bodyBytes), nil
}
