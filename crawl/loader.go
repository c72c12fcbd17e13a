package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/sitesearch"
)

// Ensure Loader implements sitesearch.PageLoader at compile time.
var _ sitesearch.PageLoader = (*Loader)(nil)

// Loader composes the page load pipeline: fetch raw HTML, extract title
// and visible text, extract and classify links.
type Loader struct {
	Fetcher   sitesearch.Fetcher
	Extractor sitesearch.Extractor
	Links     sitesearch.LinkExtractor
}

// Load fetches and processes one page.
func (l *Loader) Load(ctx context.Context, id sitesearch.DocumentID) (*sitesearch.Page, error) {
	html, err := l.Fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}

	extracted, err := l.Extractor.Extract(html)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", id, err)
	}

	links, err := l.Links.ExtractLinks(html, id)
	if err != nil {
		return nil, fmt.Errorf("extract links %s: %w", id, err)
	}

	return &sitesearch.Page{
		Title:    extracted.Title,
		Text:     extracted.Text,
		Links:    links.Internal,
		External: links.External,
	}, nil
}
