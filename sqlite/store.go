package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Compile-time interface verification.
var (
	_ sitesearch.Fetcher    = (*Store)(nil)
	_ sitesearch.SeedSource = (*Store)(nil)
)

// Store serves a corpus from the pages table. Identifiers keep whatever
// form they had when imported, so a database imported from a directory
// crawls exactly like that directory would.
type Store struct {
	db *DB
}

// NewStore creates a new Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// CreatePage inserts or replaces the stored HTML for an identifier.
func (s *Store) CreatePage(ctx context.Context, id sitesearch.DocumentID, html string) error {
	if id == "" {
		return sitesearch.Errorf(sitesearch.EINVALID, "page ID required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, html, imported_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET html = excluded.html, imported_at = excluded.imported_at
	`, string(id), html, time.Now().UTC().Format(time.RFC3339))

	return err
}

// Fetch returns the stored HTML for the identifier.
func (s *Store) Fetch(ctx context.Context, id sitesearch.DocumentID) (string, error) {
	var html string
	err := s.db.QueryRowContext(ctx, "SELECT html FROM pages WHERE id = ?", string(id)).Scan(&html)
	if errors.Is(err, sql.ErrNoRows) {
		return "", sitesearch.Errorf(sitesearch.ENOTFOUND, "page %q not found", id)
	}
	if err != nil {
		return "", err
	}
	return html, nil
}

// Seeds returns every stored identifier in import order.
func (s *Store) Seeds(ctx context.Context) ([]sitesearch.DocumentID, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM pages ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seeds []sitesearch.DocumentID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		seeds = append(seeds, sitesearch.DocumentID(id))
	}
	return seeds, rows.Err()
}

// CountPages returns the number of stored pages.
func (s *Store) CountPages(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
