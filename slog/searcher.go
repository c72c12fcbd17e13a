package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Ensure LoggingSearcher implements sitesearch.Searcher.
var _ sitesearch.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher and logs every query.
type LoggingSearcher struct {
	next   sitesearch.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a LoggingSearcher that delegates to next.
func NewLoggingSearcher(next sitesearch.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the outcome.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (results []sitesearch.Result, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error("search", "query", query, "duration", time.Since(begin), "err", err.Error())
			return
		}
		s.logger.Info("search", "query", query, "results", len(results), "duration", time.Since(begin))
	}(time.Now())
	return s.next.Search(ctx, query)
}
