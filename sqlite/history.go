package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Compile-time interface verification.
var _ sitesearch.CrawlHistory = (*HistoryService)(nil)

// HistoryService implements sitesearch.CrawlHistory using SQLite. Only
// run summaries are persisted; the index itself is rebuilt per run.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// RecordCrawl persists a crawl summary.
func (s *HistoryService) RecordCrawl(ctx context.Context, rec *sitesearch.CrawlRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crawls (id, root, started_at, duration_ms, documents, failed, terms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Root, rec.StartedAt.UTC().Format(time.RFC3339),
		rec.Duration.Milliseconds(), rec.Documents, rec.Failed, rec.Terms)

	return err
}

// FindCrawls returns recorded runs, most recent first.
func (s *HistoryService) FindCrawls(ctx context.Context) ([]*sitesearch.CrawlRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, root, started_at, duration_ms, documents, failed, terms
		FROM crawls
		ORDER BY started_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*sitesearch.CrawlRecord
	for rows.Next() {
		var rec sitesearch.CrawlRecord
		var startedAt string
		var durationMS int64

		if err := rows.Scan(&rec.ID, &rec.Root, &startedAt, &durationMS,
			&rec.Documents, &rec.Failed, &rec.Terms); err != nil {
			return nil, err
		}

		rec.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}
