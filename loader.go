package sitesearch

import "context"

// PageLoader loads one page of the corpus: raw bytes fetched, title and
// text extracted, links discovered and classified.
type PageLoader interface {
	// Load returns the page for the identifier.
	// A failed load never aborts a crawl; the crawler records the
	// identifier and moves on. Returns ENOTFOUND or EUNAVAILABLE
	// depending on the failure.
	Load(ctx context.Context, id DocumentID) (*Page, error)
}

// SeedSource enumerates the identifiers a crawl starts from.
type SeedSource interface {
	// Seeds returns the initial frontier in a stable order.
	Seeds(ctx context.Context) ([]DocumentID, error)
}
