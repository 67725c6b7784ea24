// Package http provides an HTTP-based implementation of quotescrape.Fetcher.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/quotescrape"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request.
const DefaultUserAgent = "quotescrape/1.0"

// Ensure Fetcher implements quotescrape.Fetcher at compile time.
var _ quotescrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves listing pages with plain HTTP GET requests.
// Bodies are decoded to UTF-8 based on the Content-Type header or the
// document's meta charset.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url.
// Any status other than 200 yields a result with Found set to false.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*quotescrape.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, quotescrape.Errorf(quotescrape.EINVALID, "invalid page URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused for the next page.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &quotescrape.FetchResult{StatusCode: resp.StatusCode}, nil
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	return &quotescrape.FetchResult{
		Body:       body,
		StatusCode: resp.StatusCode,
		Found:      true,
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
