package quotescrape

import "context"

// Quote is one record scraped from a quote block.
// Text and Author are always set once extraction succeeds, though either may
// be empty if the page had an empty element. Tags keeps page order.
type Quote struct {
	Text   string   `json:"text"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
}

// Validate returns an error if the quote cannot be written to a sink.
func (q *Quote) Validate() error {
	if q == nil {
		return Errorf(EINVALID, "quote required")
	}
	return nil
}

// QuoteWriter writes the full collection of quotes to durable output.
// Implementations write every quote in order or return an error.
type QuoteWriter interface {
	WriteQuotes(ctx context.Context, quotes []*Quote) error
}
