package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/sitesearch"
)

// FetchFunc is the signature for a fetch attempt.
type FetchFunc func(ctx context.Context, id sitesearch.DocumentID) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays attempts a fetch with fixed backoff delays between
// attempts (len(delays)+1 attempts total). The logger function, if
// provided, is called for each retry. Exhausted retries return the last
// error; the crawler treats that as an ordinary load failure.
func FetchWithRetryDelays(ctx context.Context, id sitesearch.DocumentID, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, id)
		if err == nil {
			return html, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", id, attempt+2, err)
		}

		// Wait before next attempt
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// Ensure RetryFetcher implements sitesearch.Fetcher at compile time.
var _ sitesearch.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher decorates a Fetcher with backoff retries. Nil Delays fall
// back to DefaultRetryDelays.
type RetryFetcher struct {
	Next   sitesearch.Fetcher
	Delays []time.Duration
	Log    LogFunc
}

// Fetch attempts the underlying fetch with retries.
func (f *RetryFetcher) Fetch(ctx context.Context, id sitesearch.DocumentID) (string, error) {
	delays := f.Delays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, id, f.Next.Fetch, f.Log, delays)
}
