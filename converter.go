package sitesearch

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms page HTML into Markdown for display or export.
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
