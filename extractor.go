package sitesearch

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the visible text with markup removed. Script and style
	// content is excluded.
	Text string
}

// Extractor extracts title and visible text from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the page title and text.
	// An empty title is allowed; callers fall back to the document ID.
	Extract(html string) (*ExtractResult, error)
}
