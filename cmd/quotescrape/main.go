package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/quotescrape"
	"github.com/fwojciec/quotescrape/crawl"
	"github.com/fwojciec/quotescrape/csv"
	"github.com/fwojciec/quotescrape/goquery"
	qshttp "github.com/fwojciec/quotescrape/http"
	qsslog "github.com/fwojciec/quotescrape/slog"
	"github.com/fwojciec/quotescrape/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// BaseURL is the site to scrape. Set before calling Run().
	BaseURL string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		BaseURL: quotescrape.DefaultBaseURL,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("quotescrape"),
		kong.Description("Scrape every quote from quotes.toscrape.com into a CSV file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.MaxPages < 0 {
		return fmt.Errorf("max-pages must not be negative")
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = qshttp.DefaultFetchTimeout
	}

	var fetcher quotescrape.Fetcher = qshttp.NewFetcher(qshttp.WithTimeout(timeout))
	var extractor quotescrape.Extractor = goquery.NewExtractor()

	switch cli.Format {
	case FormatSQLite:
		deps.Writer = sqlite.NewFileStore(cli.Output)
	default:
		deps.Writer = csv.NewFileWriter(cli.Output)
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		fetcher = qsslog.NewLoggingFetcher(fetcher, logger)
		extractor = qsslog.NewLoggingExtractor(extractor, logger)
		deps.Writer = qsslog.NewLoggingQuoteWriter(deps.Writer, logger)
	}
	defer fetcher.Close()

	deps.Crawler = &crawl.Crawler{
		Fetcher:   fetcher,
		Extractor: extractor,
		BaseURL:   m.BaseURL,
		MaxPages:  cli.MaxPages,
		Logger:    logger,
	}

	cmd := &ScrapeCmd{
		Output: cli.Output,
	}

	return cmd.Run(deps)
}

// Output formats.
const (
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Format   string        `short:"f" enum:"csv,sqlite" default:"csv" help:"Output format (csv or sqlite)"`
	MaxPages int           `name:"max-pages" default:"0" help:"Stop after this many pages (0 for no limit)"`
	Verbose  bool          `short:"v" help:"Log each fetch to stderr"`
	Output   string        `arg:"" optional:"" default:"quotes.csv" help:"Output file path"`
}
