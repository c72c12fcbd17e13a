package sitesearch

import "context"

// Fetcher retrieves the raw HTML of a page by its identifier.
// Implementations decide how identifiers map to storage: relative file
// paths, archive rows, or absolute URLs.
type Fetcher interface {
	// Fetch returns the page HTML.
	// Returns ENOTFOUND if no page exists under the identifier and
	// EUNAVAILABLE for transport trouble. The context controls timeout
	// and cancellation.
	Fetch(ctx context.Context, id DocumentID) (html string, err error)
}

// RateLimiter paces page loads during a crawl.
type RateLimiter interface {
	// Wait blocks until the rate limit allows the next load.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
