package main

import (
	"context"
	"io"

	"github.com/fwojciec/quotescrape"
	"github.com/fwojciec/quotescrape/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Crawler *crawl.Crawler
	Writer  quotescrape.QuoteWriter
}

// ScrapeCmd collects every quote and writes them to Output.
type ScrapeCmd struct {
	Output string
}
