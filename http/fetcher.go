// Package http provides an HTTP-based implementation of frontpage.Fetcher
// for retrieving news homepages with a plain GET request.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/newsdesk/frontpage"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// Ensure Fetcher implements frontpage.Fetcher at compile time.
var _ frontpage.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// It performs a single GET per call; there are no retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to frontpage.DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: frontpage.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Transport errors and
// HTTP error statuses are reported as EUNAVAILABLE with a message beginning
// "Failed to retrieve website content:", which downstream consumers display
// verbatim.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", frontpage.Errorf(frontpage.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", frontpage.Errorf(frontpage.EUNAVAILABLE, "Failed to retrieve website content: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", frontpage.Errorf(frontpage.EUNAVAILABLE, "Failed to retrieve website content: HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", frontpage.Errorf(frontpage.EUNAVAILABLE, "Failed to retrieve website content: %v", err)
	}

	return string(body), nil
}
