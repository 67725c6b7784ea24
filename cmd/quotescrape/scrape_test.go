package main_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/fwojciec/quotescrape"
	main "github.com/fwojciec/quotescrape/cmd/quotescrape"
	"github.com/fwojciec/quotescrape/crawl"
	"github.com/fwojciec/quotescrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onePageCrawler() *crawl.Crawler {
	return &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*quotescrape.FetchResult, error) {
				if url == "https://example.com/page/1/" {
					return &quotescrape.FetchResult{Body: []byte("page"), StatusCode: http.StatusOK, Found: true}, nil
				}
				return &quotescrape.FetchResult{StatusCode: http.StatusNotFound}, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_ []byte) ([]*quotescrape.Quote, error) {
				return []*quotescrape.Quote{{Text: "Be yourself.", Author: "Oscar Wilde"}}, nil
			},
		},
		BaseURL: "https://example.com/",
	}
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes collected quotes and reports count", func(t *testing.T) {
		t.Parallel()

		var written []*quotescrape.Quote
		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &stdout,
			Stderr:  &stderr,
			Crawler: onePageCrawler(),
			Writer: &mock.QuoteWriter{
				WriteQuotesFn: func(_ context.Context, quotes []*quotescrape.Quote) error {
					written = quotes
					return nil
				},
			},
		}

		err := (&main.ScrapeCmd{Output: "quotes.csv"}).Run(deps)

		require.NoError(t, err)
		require.Len(t, written, 1)
		assert.Equal(t, "Oscar Wilde", written[0].Author)
		assert.Equal(t, "Saved 1 quotes to quotes.csv\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("does not write when collection fails", func(t *testing.T) {
		t.Parallel()

		c := onePageCrawler()
		c.Extractor = &mock.Extractor{
			ExtractFn: func(_ []byte) ([]*quotescrape.Quote, error) {
				return nil, quotescrape.Errorf(quotescrape.EINVALID, "quote 1: missing author element")
			},
		}
		writeCalled := false
		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &stdout,
			Stderr:  &stderr,
			Crawler: c,
			Writer: &mock.QuoteWriter{
				WriteQuotesFn: func(_ context.Context, _ []*quotescrape.Quote) error {
					writeCalled = true
					return nil
				},
			},
		}

		err := (&main.ScrapeCmd{Output: "quotes.csv"}).Run(deps)

		require.Error(t, err)
		assert.False(t, writeCalled)
		assert.Equal(t, "error: extract page 1: quote 1: missing author element\n", stderr.String())
	})

	t.Run("reports write failure", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &stdout,
			Stderr:  &stderr,
			Crawler: onePageCrawler(),
			Writer: &mock.QuoteWriter{
				WriteQuotesFn: func(_ context.Context, _ []*quotescrape.Quote) error {
					return errors.New("disk full")
				},
			},
		}

		err := (&main.ScrapeCmd{Output: "quotes.csv"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error writing quotes.csv: disk full")
		assert.Empty(t, stdout.String())
	})
}
