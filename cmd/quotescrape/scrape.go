package main

import (
	"fmt"

	"github.com/fwojciec/quotescrape"
)

// Run executes the scrape command.
// Nothing is written unless every page was collected.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	quotes, err := deps.Crawler.Collect(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	if err := deps.Writer.WriteQuotes(deps.Ctx, quotes); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %s\n", c.Output, errorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d quotes to %s\n", len(quotes), c.Output)
	return nil
}

// errorMessage returns the user-facing message for application errors and
// the full error text for everything else.
func errorMessage(err error) string {
	if quotescrape.ErrorCode(err) == quotescrape.EINTERNAL {
		return err.Error()
	}
	return quotescrape.ErrorMessage(err)
}
