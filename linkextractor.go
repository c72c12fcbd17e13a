package sitesearch

// Links holds the outbound links discovered on a page, split by whether
// they stay inside the corpus.
type Links struct {
	// Internal links are resolvable by the corpus PageLoader and eligible
	// for crawling. Document order, deduplicated.
	Internal []DocumentID

	// External links leave the corpus. Recorded verbatim, never crawled.
	External []string
}

// LinkExtractor discovers outbound links in HTML.
// Implementations define the internal namespace: relative paths for file
// corpora, same-host URLs for HTTP corpora.
type LinkExtractor interface {
	// ExtractLinks parses the HTML of the page identified by from and
	// classifies every anchor. Fragment-only references and non-HTTP
	// schemes (mailto:, javascript:, tel:, data:) are ignored.
	ExtractLinks(html string, from DocumentID) (*Links, error)
}
