// Package quotescrape provides a page-by-page scraper for the
// quotes.toscrape.com listing. It walks /page/1/, /page/2/, ... until the
// site runs out of pages, extracts one Quote per quote block, and writes the
// collected quotes to CSV.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package quotescrape

// DefaultBaseURL is the site the scraper walks.
const DefaultBaseURL = "https://quotes.toscrape.com/"
