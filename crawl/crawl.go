// Package crawl walks the numbered listing pages and collects their quotes.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/url"

	"github.com/fwojciec/quotescrape"
)

// Crawler walks /page/1/, /page/2/, ... under BaseURL.
// The walk ends at the first page that is not found or has no quotes.
type Crawler struct {
	Fetcher   quotescrape.Fetcher
	Extractor quotescrape.Extractor

	// BaseURL defaults to quotescrape.DefaultBaseURL.
	BaseURL string

	// MaxPages stops the walk after that many pages. Zero means no limit,
	// so a site that never runs out of pages is walked forever.
	MaxPages int

	// Logger receives page-level debug events. Nil discards them.
	Logger *slog.Logger
}

// PageURL returns the URL of listing page n, resolving "page/n/" against
// base the same way a browser resolves a relative link.
func PageURL(base string, n int) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", quotescrape.Errorf(quotescrape.EINVALID, "invalid base URL: %v", err)
	}
	ref := &url.URL{Path: fmt.Sprintf("page/%d/", n)}
	return u.ResolveReference(ref).String(), nil
}

// Pages returns the sequence of listing pages that have quotes.
// The sequence is lazy: each page is fetched when the consumer asks for it.
// An error is yielded once with a nil page and ends the sequence.
// Every call starts again from page 1.
func (c *Crawler) Pages(ctx context.Context) iter.Seq2[*quotescrape.Page, error] {
	return func(yield func(*quotescrape.Page, error) bool) {
		logger := c.logger()
		base := c.BaseURL
		if base == "" {
			base = quotescrape.DefaultBaseURL
		}

		for n := 1; c.MaxPages <= 0 || n <= c.MaxPages; n++ {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			pageURL, err := PageURL(base, n)
			if err != nil {
				yield(nil, err)
				return
			}

			result, err := c.Fetcher.Fetch(ctx, pageURL)
			if err != nil {
				yield(nil, pageError("fetch", n, err))
				return
			}
			if !result.Found {
				logger.Debug("end of pages", "page", n, "url", pageURL, "status", result.StatusCode)
				return
			}

			quotes, err := c.Extractor.Extract(result.Body)
			if err != nil {
				yield(nil, pageError("extract", n, err))
				return
			}
			if len(quotes) == 0 {
				logger.Debug("end of pages", "page", n, "url", pageURL, "reason", "no quotes")
				return
			}

			page := &quotescrape.Page{Number: n, URL: pageURL, Quotes: quotes}
			if !yield(page, nil) {
				return
			}
		}

		logger.Debug("page limit reached", "max_pages", c.MaxPages)
	}
}

// Collect walks every page and returns all quotes, in page order and then
// document order within each page. Nothing is returned if any page fails.
func (c *Crawler) Collect(ctx context.Context) ([]*quotescrape.Quote, error) {
	var quotes []*quotescrape.Quote
	for page, err := range c.Pages(ctx) {
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, page.Quotes...)
	}
	return quotes, nil
}

// pageError attributes err to page n. Application errors keep their code so
// the message shown to the user still names the page.
func pageError(op string, n int, err error) error {
	var e *quotescrape.Error
	if errors.As(err, &e) {
		return quotescrape.Errorf(e.Code, "%s page %d: %s", op, n, e.Message)
	}
	return fmt.Errorf("%s page %d: %w", op, n, err)
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
