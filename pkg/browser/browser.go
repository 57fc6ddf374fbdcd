// Package browser drives a headless Chrome session for rendered page
// fetching.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

var (
	// ErrDriver indicates the browser could not be started or the
	// DevTools protocol failed.
	ErrDriver = errors.New("browser driver error")

	// ErrNetwork indicates a network-level navigation failure (DNS,
	// connection refused, TLS).
	ErrNetwork = errors.New("network error")

	// ErrFetchTimeout indicates the page did not finish loading within
	// the configured timeout.
	ErrFetchTimeout = errors.New("fetch timeout")
)

// settleDelay gives lazy-loaded content a moment to render after the
// initial load and again after scrolling.
const settleDelay = 1 * time.Second

// Options configures a browser session.
type Options struct {
	// UserAgent is sent on every request; empty keeps Chrome's default.
	UserAgent string

	// ExtensionDir is an unpacked extension to load (the cookie-consent
	// suppressor). Skipped when the directory does not exist.
	ExtensionDir string

	// PageLoadTimeout bounds each fetch.
	PageLoadTimeout time.Duration
}

// Session owns one long-lived Chrome instance. Construct with NewSession,
// fetch with FetchHTML, and always Close — including on error paths.
type Session struct {
	allocCtx    context.Context
	cancelAlloc context.CancelFunc
	browserCtx  context.Context
	cancelBr    context.CancelFunc

	timeout time.Duration
}

// NewSession prepares a Chrome allocator with anti-detection flags and the
// consent-suppression extension. Chrome itself launches lazily on the
// first fetch.
func NewSession(opts Options) *Session {
	timeout := opts.PageLoadTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("enable-automation", false),
		chromedp.NoSandbox,
	)
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}
	if dirExists(opts.ExtensionDir) {
		// Extensions need the default disable-extensions switch undone.
		allocOpts = append(allocOpts,
			chromedp.Flag("disable-extensions", false),
			chromedp.Flag("load-extension", opts.ExtensionDir),
		)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, cancelBr := chromedp.NewContext(allocCtx)

	return &Session{
		allocCtx:    allocCtx,
		cancelAlloc: cancelAlloc,
		browserCtx:  browserCtx,
		cancelBr:    cancelBr,
		timeout:     timeout,
	}
}

// Close tears down the browser process and allocator. Safe to call after
// a failed fetch; never leaves a Chrome process behind.
func (s *Session) Close() {
	if s.cancelBr != nil {
		s.cancelBr()
	}
	if s.cancelAlloc != nil {
		s.cancelAlloc()
	}
}

// FetchHTML navigates to the already encoded URL, waits for the document,
// scrolls to the bottom to trigger lazy loading, and returns the rendered
// outer HTML. The whole operation is bounded by the session's page-load
// timeout.
func (s *Session) FetchHTML(ctx context.Context, encodedURL string) (string, error) {
	if strings.TrimSpace(encodedURL) == "" {
		return "", fmt.Errorf("%w: empty URL", ErrDriver)
	}

	runCtx, cancel := context.WithTimeout(s.browserCtx, s.timeout)
	defer cancel()

	// Honor cancellation from the caller as well.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(encodedURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight);`, nil),
		chromedp.Sleep(settleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", classify(err)
	}
	return html, nil
}

// classify maps chromedp failures onto the fetch error taxonomy.
func classify(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrFetchTimeout, err)
	case strings.Contains(err.Error(), "net::ERR"):
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	case errors.Is(err, exec.ErrNotFound):
		return fmt.Errorf("%w: chrome executable not found: %v", ErrDriver, err)
	default:
		return fmt.Errorf("%w: %v", ErrDriver, err)
	}
}

func dirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
