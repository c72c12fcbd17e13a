package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/crawl"
	"github.com/fwojciec/sitesearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	// Short delays keep the tests fast.
	delays := []time.Duration{time.Millisecond, time.Millisecond}

	t.Run("returns immediately on success", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, id sitesearch.DocumentID) (string, error) {
			attempts++
			return "<html>ok</html>", nil
		}

		html, err := crawl.FetchWithRetryDelays(context.Background(), "a.html", fetch, nil, delays)

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 1, attempts, "success should not retry")
	})

	t.Run("retries until an attempt succeeds", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, id sitesearch.DocumentID) (string, error) {
			attempts++
			if attempts < 3 {
				return "", sitesearch.Errorf(sitesearch.EUNAVAILABLE, "connection reset")
			}
			return "<html>ok</html>", nil
		}

		html, err := crawl.FetchWithRetryDelays(context.Background(), "a.html", fetch, nil, delays)

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, id sitesearch.DocumentID) (string, error) {
			attempts++
			return "", sitesearch.Errorf(sitesearch.EUNAVAILABLE, "attempt %d failed", attempts)
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "a.html", fetch, nil, delays)

		require.Error(t, err)
		assert.Equal(t, 3, attempts, "two delays allow three attempts")
		assert.Equal(t, sitesearch.EUNAVAILABLE, sitesearch.ErrorCode(err))
		assert.Contains(t, sitesearch.ErrorMessage(err), "attempt 3")
	})

	t.Run("logs each retry", func(t *testing.T) {
		t.Parallel()

		fetch := func(ctx context.Context, id sitesearch.DocumentID) (string, error) {
			return "", sitesearch.Errorf(sitesearch.EUNAVAILABLE, "boom")
		}

		var logged []string
		logger := func(format string, args ...any) {
			logged = append(logged, format)
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "a.html", fetch, logger, delays)

		require.Error(t, err)
		assert.Len(t, logged, 2, "one log line per retry, not per attempt")
	})

	t.Run("stops waiting when the context is canceled", func(t *testing.T) {
		t.Parallel()

		fetch := func(ctx context.Context, id sitesearch.DocumentID) (string, error) {
			return "", sitesearch.Errorf(sitesearch.EUNAVAILABLE, "boom")
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := crawl.FetchWithRetryDelays(ctx, "a.html", fetch, nil, []time.Duration{time.Minute})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRetryFetcher(t *testing.T) {
	t.Parallel()

	t.Run("implements sitesearch.Fetcher interface", func(t *testing.T) {
		t.Parallel()
		var _ sitesearch.Fetcher = &crawl.RetryFetcher{}
	})

	t.Run("delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, id sitesearch.DocumentID) (string, error) {
				assert.Equal(t, sitesearch.DocumentID("docs/a.html"), id)
				return "<html>ok</html>", nil
			},
		}
		fetcher := &crawl.RetryFetcher{Next: inner}

		html, err := fetcher.Fetch(context.Background(), "docs/a.html")

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, id sitesearch.DocumentID) (string, error) {
				attempts++
				if attempts == 1 {
					return "", sitesearch.Errorf(sitesearch.EUNAVAILABLE, "timeout")
				}
				return "<html>ok</html>", nil
			},
		}
		fetcher := &crawl.RetryFetcher{
			Next:   inner,
			Delays: []time.Duration{time.Millisecond},
		}

		html, err := fetcher.Fetch(context.Background(), "docs/a.html")

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 2, attempts)
	})
}
