package mock

import (
	"context"

	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sitesearch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, id sitesearch.DocumentID) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, id sitesearch.DocumentID) (string, error) {
	return f.FetchFn(ctx, id)
}

var _ sitesearch.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of sitesearch.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *RateLimiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
