package sitesearch

import (
	"fmt"
	"strings"
)

// FormatResults formats ranked results for display.
// One line per hit: title (falling back to the document ID), the ID, and
// the score to four decimal places.
func FormatResults(results []Result) string {
	if len(results) == 0 {
		return "No results found."
	}

	lines := make([]string, 0, len(results)+1)
	lines = append(lines, fmt.Sprintf("Found %d result(s):", len(results)))
	for _, r := range results {
		title := r.Title
		if title == "" {
			title = string(r.ID)
		}
		lines = append(lines, fmt.Sprintf("%s (%s) - Score: %.4f", title, r.ID, r.Score))
	}

	return strings.Join(lines, "\n")
}
