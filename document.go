package sitesearch

// DocumentID identifies a document within a corpus. The value is opaque to
// the crawler and the index; page sources decide what it means (a relative
// file path, an archive key, an absolute URL).
type DocumentID string

// Document represents a crawled, tokenized page of the corpus.
type Document struct {
	ID    DocumentID `json:"id"`
	Title string     `json:"title"`

	// Text is the visible text extracted from the page.
	Text string `json:"text"`

	// Terms is the normalized token sequence produced by the Analyzer.
	// Order and duplicates are preserved.
	Terms []string `json:"terms"`

	// Links holds outbound internal links in document order, deduplicated.
	// Self-references may appear here; they never count toward inbound
	// popularity.
	Links []DocumentID `json:"links"`

	// External holds outbound references that leave the corpus. Recorded
	// for reporting, never crawled.
	External []string `json:"external"`

	ContentHash string `json:"contentHash"`

	// Position is the 0-based discovery index assigned by the crawler.
	Position int `json:"position"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document ID required")
	}
	return nil
}

// TermCount returns the total number of terms, duplicates included.
func (d *Document) TermCount() int {
	return len(d.Terms)
}

// Page is the raw output of a PageLoader before tokenization.
type Page struct {
	Title    string
	Text     string
	Links    []DocumentID
	External []string
}
