package mock

import (
	"context"

	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.CrawlHistory = (*CrawlHistory)(nil)

// CrawlHistory is a mock implementation of sitesearch.CrawlHistory.
type CrawlHistory struct {
	RecordCrawlFn func(ctx context.Context, rec *sitesearch.CrawlRecord) error
	FindCrawlsFn  func(ctx context.Context) ([]*sitesearch.CrawlRecord, error)
}

func (h *CrawlHistory) RecordCrawl(ctx context.Context, rec *sitesearch.CrawlRecord) error {
	return h.RecordCrawlFn(ctx, rec)
}

func (h *CrawlHistory) FindCrawls(ctx context.Context) ([]*sitesearch.CrawlRecord, error) {
	return h.FindCrawlsFn(ctx)
}
