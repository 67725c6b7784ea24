package mock

import (
	"context"

	"github.com/fwojciec/quotescrape"
)

var _ quotescrape.QuoteWriter = (*QuoteWriter)(nil)

// QuoteWriter is a mock implementation of quotescrape.QuoteWriter.
type QuoteWriter struct {
	WriteQuotesFn func(ctx context.Context, quotes []*quotescrape.Quote) error
}

func (w *QuoteWriter) WriteQuotes(ctx context.Context, quotes []*quotescrape.Quote) error {
	return w.WriteQuotesFn(ctx, quotes)
}
