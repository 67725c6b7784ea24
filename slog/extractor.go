package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/quotescrape"
)

// Ensure LoggingExtractor implements quotescrape.Extractor.
var _ quotescrape.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   quotescrape.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next quotescrape.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the quote count.
func (e *LoggingExtractor) Extract(html []byte) (quotes []*quotescrape.Quote, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"quotes", len(quotes),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
