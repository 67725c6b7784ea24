package quotescrape

// Page is one fetched and extracted listing page.
// Pages are produced by the crawler and consumed as soon as their quotes are
// collected.
type Page struct {
	Number int
	URL    string
	Quotes []*Quote
}
