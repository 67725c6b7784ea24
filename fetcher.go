package quotescrape

import "context"

// FetchResult is the outcome of fetching one page.
// Found is false when the server answered with anything other than 200 OK;
// Body is nil in that case and StatusCode holds what the server sent.
type FetchResult struct {
	Body       []byte
	StatusCode int
	Found      bool
}

// Fetcher retrieves raw page content.
type Fetcher interface {
	// Fetch issues a single GET for url.
	// A non-200 response is not an error: it returns a result with
	// Found set to false. Transport failures are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases fetcher resources.
	Close() error
}
