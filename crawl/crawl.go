// Package crawl provides corpus construction orchestration. It drives a
// breadth-first traversal from seed pages, loads and tokenizes each page
// once, and assembles the link graph the ranking bonus is computed from.
package crawl

import (
	"context"

	"github.com/fwojciec/sitesearch"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Crawler walks a corpus breadth-first. Loader and Analyzer are required;
// RateLimiter is optional. Concurrency bounds parallel page loads within
// one BFS level, it never changes the discovery order.
type Crawler struct {
	Loader      sitesearch.PageLoader
	Analyzer    sitesearch.Analyzer
	RateLimiter sitesearch.RateLimiter
	Concurrency int
}

// Result holds the outcome of a crawl.
type Result struct {
	// RunID uniquely identifies this crawl run.
	RunID string

	// Documents in discovery order. Position fields match slice indexes.
	Documents []*sitesearch.Document

	// Graph records outbound links and inbound counts for every crawled
	// source, including links to pages that failed to load.
	Graph *sitesearch.LinkGraph

	// Failed lists identifiers whose load failed, in discovery order.
	// Their links were never followed.
	Failed []sitesearch.DocumentID
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type    ProgressType
	ID      sitesearch.DocumentID
	Visited int
	Queued  int
	Error   error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressLoaded ProgressType = iota
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl traverses the corpus breadth-first from the seeds. Each reachable
// page is loaded exactly once; pages that fail to load are recorded in
// Failed and their links are not followed. External links are kept on the
// documents and never enqueued. The progress callback, if provided,
// receives events as the crawl proceeds.
//
// The traversal processes the frontier in waves (one BFS level at a
// time). Waves load in parallel up to Concurrency, but results integrate
// sequentially in wave order on this goroutine, which is the only writer
// of the frontier, the graph, and the result. Output is therefore
// identical for any concurrency level.
func (c *Crawler) Crawl(ctx context.Context, seeds []sitesearch.DocumentID, progress ProgressFunc) (*Result, error) {
	frontier := NewFrontier()
	for _, id := range seeds {
		frontier.Push(id)
	}

	result := &Result{
		RunID: uuid.New().String(),
		Graph: sitesearch.NewLinkGraph(),
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	for frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Snapshot the current BFS level.
		wave := make([]sitesearch.DocumentID, 0, frontier.Len())
		for {
			id, ok := frontier.Pop()
			if !ok {
				break
			}
			wave = append(wave, id)
		}

		// Workers report results by wave slot only.
		pages := make([]*sitesearch.Page, len(wave))
		errs := make([]error, len(wave))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for i, id := range wave {
			g.Go(func() error {
				if c.RateLimiter != nil {
					if err := c.RateLimiter.Wait(gctx); err != nil {
						errs[i] = err
						return nil
					}
				}
				pages[i], errs[i] = c.Loader.Load(gctx, id)
				return nil
			})
		}
		_ = g.Wait()

		// Integrate in wave order.
		for i, id := range wave {
			if errs[i] != nil {
				result.Failed = append(result.Failed, id)
				if progress != nil {
					progress(ProgressEvent{
						Type:    ProgressFailed,
						ID:      id,
						Visited: len(result.Documents),
						Queued:  frontier.Len(),
						Error:   errs[i],
					})
				}
				continue
			}

			doc := c.document(id, pages[i], len(result.Documents))
			result.Documents = append(result.Documents, doc)
			result.Graph.Add(id, doc.Links)
			for _, link := range doc.Links {
				frontier.Push(link)
			}

			if progress != nil {
				progress(ProgressEvent{
					Type:    ProgressLoaded,
					ID:      id,
					Visited: len(result.Documents),
					Queued:  frontier.Len(),
				})
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:    ProgressFinished,
			Visited: len(result.Documents),
		})
	}

	return result, nil
}

// document assembles the crawl output for one loaded page.
func (c *Crawler) document(id sitesearch.DocumentID, page *sitesearch.Page, position int) *sitesearch.Document {
	title := page.Title
	if title == "" {
		title = string(id)
	}
	return &sitesearch.Document{
		ID:          id,
		Title:       title,
		Text:        page.Text,
		Terms:       c.Analyzer.Analyze(page.Text),
		Links:       page.Links,
		External:    page.External,
		ContentHash: ComputeHash(page.Text),
		Position:    position,
	}
}
