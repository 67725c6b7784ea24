package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/quotescrape"
)

// Ensure LoggingQuoteWriter implements quotescrape.QuoteWriter.
var _ quotescrape.QuoteWriter = (*LoggingQuoteWriter)(nil)

// LoggingQuoteWriter wraps a QuoteWriter with debug logging.
type LoggingQuoteWriter struct {
	next   quotescrape.QuoteWriter
	logger *slog.Logger
}

// NewLoggingQuoteWriter creates a new LoggingQuoteWriter.
func NewLoggingQuoteWriter(next quotescrape.QuoteWriter, logger *slog.Logger) *LoggingQuoteWriter {
	return &LoggingQuoteWriter{next: next, logger: logger}
}

// WriteQuotes delegates to the wrapped writer and logs the operation.
func (w *LoggingQuoteWriter) WriteQuotes(ctx context.Context, quotes []*quotescrape.Quote) (err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"count", len(quotes),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		w.logger.Debug("write quotes", attrs...)
	}(time.Now())
	return w.next.WriteQuotes(ctx, quotes)
}
