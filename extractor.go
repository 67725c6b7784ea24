package quotescrape

// Extractor maps listing page markup to quotes.
type Extractor interface {
	// Extract parses html and returns one Quote per quote block in
	// document order. A page without quote blocks yields an empty slice.
	// A quote block missing its text or author element returns EINVALID.
	Extract(html []byte) ([]*Quote, error)
}
