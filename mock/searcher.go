package mock

import (
	"context"

	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of sitesearch.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]sitesearch.Result, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]sitesearch.Result, error) {
	return s.SearchFn(ctx, query)
}
