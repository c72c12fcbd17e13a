package crawl

import (
	"context"

	"github.com/fwojciec/sitesearch"
	"golang.org/x/time/rate"
)

var _ sitesearch.RateLimiter = (*Limiter)(nil)

// Limiter paces page loads using a token bucket. A crawl targets a single
// source, so one bucket covers the whole run.
type Limiter struct {
	l *rate.Limiter
}

// NewLimiter creates a Limiter with the specified loads per second and a
// burst of 1 (no bursting allowed).
func NewLimiter(rps float64) *Limiter {
	return &Limiter{
		l: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Wait blocks until the rate limit allows the next load.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.l.Wait(ctx)
}
