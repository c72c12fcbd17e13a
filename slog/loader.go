package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Ensure LoggingPageLoader implements sitesearch.PageLoader.
var _ sitesearch.PageLoader = (*LoggingPageLoader)(nil)

// LoggingPageLoader wraps a PageLoader and logs a debug line per page.
type LoggingPageLoader struct {
	next   sitesearch.PageLoader
	logger *slog.Logger
}

// NewLoggingPageLoader creates a LoggingPageLoader that delegates to next.
func NewLoggingPageLoader(next sitesearch.PageLoader, logger *slog.Logger) *LoggingPageLoader {
	return &LoggingPageLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the outcome.
func (l *LoggingPageLoader) Load(ctx context.Context, id sitesearch.DocumentID) (page *sitesearch.Page, err error) {
	defer func(begin time.Time) {
		if err != nil {
			l.logger.Error("load page", "id", string(id), "duration", time.Since(begin), "err", err.Error())
			return
		}
		l.logger.Debug("load page", "id", string(id), "title", page.Title, "links", len(page.Links), "external", len(page.External), "duration", time.Since(begin))
	}(time.Now())
	return l.next.Load(ctx, id)
}
