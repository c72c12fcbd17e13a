package crawl

import (
	"sync"

	"github.com/fwojciec/sitesearch"
)

// Compile-time interface verification.
var _ sitesearch.Frontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO crawl queue with exact visited-set
// deduplication. Crawl termination depends on the set being exact: an
// identifier enters the queue at most once, ever, so cyclic corpora
// drain the queue. It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  map[sitesearch.DocumentID]struct{}
	queue []sitesearch.DocumentID
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: make(map[sitesearch.DocumentID]struct{}),
	}
}

// Push adds an identifier to the queue.
// Returns false if the identifier has already been seen.
func (f *Frontier) Push(id sitesearch.DocumentID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.seen[id]; ok {
		return false
	}
	f.seen[id] = struct{}{}
	f.queue = append(f.queue, id)
	return true
}

// Pop returns the next identifier in FIFO order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (sitesearch.DocumentID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	id := f.queue[0]
	f.queue = f.queue[1:]
	return id, true
}

// Len returns the number of identifiers waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the identifier has been queued or processed.
func (f *Frontier) Seen(id sitesearch.DocumentID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.seen[id]
	return ok
}
