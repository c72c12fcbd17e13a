package mock

import (
	"context"

	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.PageLoader = (*PageLoader)(nil)

// PageLoader is a mock implementation of sitesearch.PageLoader.
type PageLoader struct {
	LoadFn func(ctx context.Context, id sitesearch.DocumentID) (*sitesearch.Page, error)
}

func (l *PageLoader) Load(ctx context.Context, id sitesearch.DocumentID) (*sitesearch.Page, error) {
	return l.LoadFn(ctx, id)
}

var _ sitesearch.SeedSource = (*SeedSource)(nil)

// SeedSource is a mock implementation of sitesearch.SeedSource.
type SeedSource struct {
	SeedsFn func(ctx context.Context) ([]sitesearch.DocumentID, error)
}

func (s *SeedSource) Seeds(ctx context.Context) ([]sitesearch.DocumentID, error) {
	return s.SeedsFn(ctx)
}
