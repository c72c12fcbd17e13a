package sitesearch

import (
	"context"
	"time"
)

// CrawlRecord summarizes one finished crawl run for the history log.
// The index itself is never persisted; records exist so repeated runs
// over a corpus can be compared.
type CrawlRecord struct {
	ID        string        `json:"id"`
	Root      string        `json:"root"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`
	Documents int           `json:"documents"`
	Failed    int           `json:"failed"`
	Terms     int           `json:"terms"`
}

// Validate returns an error if the record contains invalid fields.
func (r *CrawlRecord) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "crawl record ID required")
	}
	if r.Root == "" {
		return Errorf(EINVALID, "crawl record root required")
	}
	return nil
}

// CrawlHistory stores summaries of past crawl runs.
type CrawlHistory interface {
	// RecordCrawl persists a crawl summary.
	RecordCrawl(ctx context.Context, rec *CrawlRecord) error

	// FindCrawls returns recorded runs, most recent first.
	FindCrawls(ctx context.Context) ([]*CrawlRecord, error)
}
