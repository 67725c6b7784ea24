// Package goquery provides a goquery-based implementation of
// quotescrape.Extractor.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/quotescrape"
)

// Selectors holds the CSS selectors that identify a quote block and its
// fields. Field selectors are evaluated within the quote block.
type Selectors struct {
	Quote  string
	Text   string
	Author string
	Tag    string
}

// DefaultSelectors returns the markup convention used by quotes.toscrape.com.
func DefaultSelectors() Selectors {
	return Selectors{
		Quote:  ".quote",
		Text:   ".text",
		Author: ".author",
		Tag:    ".tag",
	}
}

// Ensure Extractor implements quotescrape.Extractor at compile time.
var _ quotescrape.Extractor = (*Extractor)(nil)

// Extractor extracts quotes from listing page HTML.
type Extractor struct {
	selectors Selectors
}

// NewExtractor creates an Extractor using DefaultSelectors.
func NewExtractor() *Extractor {
	return NewExtractorWithSelectors(DefaultSelectors())
}

// NewExtractorWithSelectors creates an Extractor using custom selectors.
func NewExtractorWithSelectors(s Selectors) *Extractor {
	return &Extractor{selectors: s}
}

// Extract returns one Quote per quote block, in document order.
// Quote blocks are numbered from 1 in error messages.
func (e *Extractor) Extract(html []byte) ([]*quotescrape.Quote, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, quotescrape.Errorf(quotescrape.EINVALID, "failed to parse HTML: %v", err)
	}

	blocks := doc.Find(e.selectors.Quote)
	quotes := make([]*quotescrape.Quote, 0, blocks.Length())

	var extractErr error
	blocks.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		q, err := e.extractQuote(sel, i+1)
		if err != nil {
			extractErr = err
			return false
		}
		quotes = append(quotes, q)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return quotes, nil
}

// extractQuote maps a single quote block to a Quote.
// The text and author elements must exist; tags may be absent.
func (e *Extractor) extractQuote(sel *goquery.Selection, n int) (*quotescrape.Quote, error) {
	text := sel.Find(e.selectors.Text).First()
	if text.Length() == 0 {
		return nil, quotescrape.Errorf(quotescrape.EINVALID, "quote %d: missing text element %q", n, e.selectors.Text)
	}

	author := sel.Find(e.selectors.Author).First()
	if author.Length() == 0 {
		return nil, quotescrape.Errorf(quotescrape.EINVALID, "quote %d: missing author element %q", n, e.selectors.Author)
	}

	var tags []string
	sel.Find(e.selectors.Tag).Each(func(_ int, tag *goquery.Selection) {
		tags = append(tags, strings.TrimSpace(tag.Text()))
	})

	return &quotescrape.Quote{
		Text:   strings.TrimSpace(text.Text()),
		Author: strings.TrimSpace(author.Text()),
		Tags:   tags,
	}, nil
}
