// Package csv writes quotes as comma-separated values.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/quotescrape"
)

// Header is the first row of every file.
var Header = []string{"text", "author", "tags"}

// FormatTags renders tags as a Python list literal, e.g. ['self', 'inspirational'].
// The tags column must stay in this form for existing quotes.csv readers.
// It is not a delimited sub-field: a tag containing ", " is ambiguous.
func FormatTags(tags []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, tag := range tags {
		if i > 0 {
			b.WriteString(", ")
		}
		writeLiteral(&b, tag)
	}
	b.WriteByte(']')
	return b.String()
}

// writeLiteral writes s as a Python string literal.
// Single quotes are used unless s contains a single quote and no double quote.
func writeLiteral(b *strings.Builder, s string) {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(b, `\u%04x`, r)
		default:
			fmt.Fprintf(b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
}

// Ensure Writer implements quotescrape.QuoteWriter at compile time.
var _ quotescrape.QuoteWriter = (*Writer)(nil)

// Writer writes quotes as CSV to an io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteQuotes writes the header row followed by one row per quote.
// Rows end in \r\n as RFC 4180 specifies.
func (w *Writer) WriteQuotes(ctx context.Context, quotes []*quotescrape.Quote) error {
	cw := csv.NewWriter(w.w)
	cw.UseCRLF = true

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, q := range quotes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := q.Validate(); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := cw.Write([]string{q.Text, q.Author, FormatTags(q.Tags)}); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Ensure FileWriter implements quotescrape.QuoteWriter at compile time.
var _ quotescrape.QuoteWriter = (*FileWriter)(nil)

// FileWriter writes quotes as CSV to a file path.
// Rows go to a temporary file in the same directory which is renamed over
// path once complete, so path is either untouched or fully written.
type FileWriter struct {
	path string
}

// NewFileWriter creates a FileWriter for path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Path returns the output path.
func (w *FileWriter) Path() string {
	return w.path
}

// WriteQuotes writes quotes to a temporary file and moves it to the output path.
func (w *FileWriter) WriteQuotes(ctx context.Context, quotes []*quotescrape.Quote) (err error) {
	f, err := os.CreateTemp(filepath.Dir(w.path), filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create %s: %w", w.path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			err = errors.Join(err, removeIfExists(tmp))
		}
	}()

	if err := NewWriter(f).WriteQuotes(ctx, quotes); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, w.path)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
