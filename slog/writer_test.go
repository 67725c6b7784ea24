package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/quotescrape"
	"github.com/fwojciec/quotescrape/mock"
	qsslog "github.com/fwojciec/quotescrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingQuoteWriter_WriteQuotes(t *testing.T) {
	t.Parallel()

	t.Run("logs count and delegates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var got []*quotescrape.Quote
		inner := &mock.QuoteWriter{
			WriteQuotesFn: func(_ context.Context, quotes []*quotescrape.Quote) error {
				got = quotes
				return nil
			},
		}
		quotes := []*quotescrape.Quote{{Text: "a", Author: "b"}}

		w := qsslog.NewLoggingQuoteWriter(inner, newDebugLogger(&buf))
		err := w.WriteQuotes(context.Background(), quotes)

		require.NoError(t, err)
		assert.Equal(t, quotes, got)
		output := buf.String()
		assert.Contains(t, output, "write quotes")
		assert.Contains(t, output, "count=1")
		assert.Contains(t, output, "level=DEBUG")
		assert.NotContains(t, output, "err=")
	})

	t.Run("stays quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.QuoteWriter{
			WriteQuotesFn: func(_ context.Context, _ []*quotescrape.Quote) error {
				return nil
			},
		}

		w := qsslog.NewLoggingQuoteWriter(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		err := w.WriteQuotes(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.QuoteWriter{
			WriteQuotesFn: func(_ context.Context, _ []*quotescrape.Quote) error {
				return errors.New("disk full")
			},
		}

		w := qsslog.NewLoggingQuoteWriter(inner, newDebugLogger(&buf))
		err := w.WriteQuotes(context.Background(), nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}
