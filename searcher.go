package sitesearch

import "context"

// Result is one ranked hit of a query.
type Result struct {
	ID    DocumentID `json:"id"`
	Title string     `json:"title"`
	Score float64    `json:"score"`
}

// Searcher answers queries against an indexed corpus.
type Searcher interface {
	// Search tokenizes the query with the corpus Analyzer and returns
	// matching documents ordered by descending score, ties broken by
	// ascending document ID. Empty queries and queries without any known
	// term return an empty slice, never an error. Safe for concurrent
	// callers.
	Search(ctx context.Context, query string) ([]Result, error)
}
