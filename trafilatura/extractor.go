// Package trafilatura implements main-content extraction using the
// go-trafilatura library. Unlike the full-page extractor it drops
// navigation, sidebars and footers, keeping menu terms out of the index.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/sitesearch"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements sitesearch.Extractor at compile time.
var _ sitesearch.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the title and main content text
// with whitespace normalized to single spaces.
func (e *Extractor) Extract(rawHTML string) (*sitesearch.ExtractResult, error) {
	if rawHTML == "" {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &sitesearch.ExtractResult{
		Title: result.Metadata.Title,
		Text:  strings.Join(strings.Fields(result.ContentText), " "),
	}, nil
}
