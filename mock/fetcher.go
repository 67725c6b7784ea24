package mock

import (
	"context"

	"github.com/fwojciec/quotescrape"
)

var _ quotescrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of quotescrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*quotescrape.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*quotescrape.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
