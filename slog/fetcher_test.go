package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/fwojciec/quotescrape"
	"github.com/fwojciec/quotescrape/mock"
	qsslog "github.com/fwojciec/quotescrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDebugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with status bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*quotescrape.FetchResult, error) {
				return &quotescrape.FetchResult{Body: []byte("<html>content</html>"), StatusCode: http.StatusOK, Found: true}, nil
			},
		}

		fetcher := qsslog.NewLoggingFetcher(inner, newDebugLogger(&buf))
		result, err := fetcher.Fetch(context.Background(), "https://quotes.toscrape.com/page/1/")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", string(result.Body))
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url=https://quotes.toscrape.com/page/1/")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "found=true")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
		assert.NotContains(t, output, "err=")
	})

	t.Run("logs missing page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*quotescrape.FetchResult, error) {
				return &quotescrape.FetchResult{StatusCode: http.StatusNotFound}, nil
			},
		}

		fetcher := qsslog.NewLoggingFetcher(inner, newDebugLogger(&buf))
		result, err := fetcher.Fetch(context.Background(), "https://quotes.toscrape.com/page/11/")

		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Contains(t, buf.String(), "status=404")
		assert.Contains(t, buf.String(), "found=false")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*quotescrape.FetchResult, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := qsslog.NewLoggingFetcher(inner, newDebugLogger(&buf))
		_, err := fetcher.Fetch(context.Background(), "https://quotes.toscrape.com/page/1/")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := qsslog.NewLoggingFetcher(inner, newDebugLogger(&buf))
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}
