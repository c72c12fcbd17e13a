package sitesearch

// Frontier manages the crawl queue with exact deduplication.
// An identifier is marked seen when first pushed and stays seen forever,
// so a document enters the queue at most once per crawl.
type Frontier interface {
	// Push adds an identifier to the queue.
	// Returns false if the identifier has already been seen.
	Push(id DocumentID) bool

	// Pop returns the next identifier in FIFO order.
	// Returns false if the frontier is empty.
	Pop() (DocumentID, bool)

	// Len returns the number of identifiers waiting in the queue.
	Len() int

	// Seen returns true if the identifier has been queued or processed.
	Seen(id DocumentID) bool
}
