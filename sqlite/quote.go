package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/quotescrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ quotescrape.QuoteWriter = (*QuoteStore)(nil)

// QuoteStore stores quotes in the quotes table.
type QuoteStore struct {
	db  *DB
	now func() time.Time
}

// NewQuoteStore creates a new QuoteStore.
func NewQuoteStore(db *DB) *QuoteStore {
	return &QuoteStore{db: db, now: time.Now}
}

// WriteQuotes replaces the contents of the quotes table with quotes, in one
// transaction. Position follows slice order starting at 1.
func (s *QuoteStore) WriteQuotes(ctx context.Context, quotes []*quotescrape.Quote) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM quotes"); err != nil {
		return fmt.Errorf("failed to clear quotes: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO quotes (id, position, text, author, tags, content_hash, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	scrapedAt := s.now().UTC().Format(time.RFC3339)
	for i, q := range quotes {
		if err := q.Validate(); err != nil {
			return err
		}

		tags := q.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			uuid.New().String(), i+1, q.Text, q.Author, string(tagsJSON),
			hashQuote(q.Text, q.Author), scrapedAt,
		); err != nil {
			return fmt.Errorf("failed to insert quote %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

// CountQuotes returns the number of stored quotes.
func (s *QuoteStore) CountQuotes(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quotes").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Ensure FileStore implements quotescrape.QuoteWriter at compile time.
var _ quotescrape.QuoteWriter = (*FileStore)(nil)

// FileStore writes quotes to a SQLite database file, opening it only for
// the duration of WriteQuotes.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the database at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the database path.
func (s *FileStore) Path() string {
	return s.path
}

// WriteQuotes opens the database, replaces its quotes, and closes it.
// The row count is read back after the write and must match len(quotes).
func (s *FileStore) WriteQuotes(ctx context.Context, quotes []*quotescrape.Quote) (err error) {
	db := NewDB(s.path)
	if err := db.Open(); err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	store := NewQuoteStore(db)
	if err := store.WriteQuotes(ctx, quotes); err != nil {
		return err
	}

	n, err := store.CountQuotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to count quotes: %w", err)
	}
	if n != len(quotes) {
		return quotescrape.Errorf(quotescrape.EINTERNAL, "%s holds %d quotes after writing %d", s.path, n, len(quotes))
	}
	return nil
}
