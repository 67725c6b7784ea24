package mock

import "github.com/fwojciec/quotescrape"

var _ quotescrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of quotescrape.Extractor.
type Extractor struct {
	ExtractFn func(html []byte) ([]*quotescrape.Quote, error)
}

func (e *Extractor) Extract(html []byte) ([]*quotescrape.Quote, error) {
	return e.ExtractFn(html)
}
