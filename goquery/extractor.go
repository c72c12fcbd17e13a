// Package goquery implements HTML title, text and link extraction using
// CSS selectors via the goquery library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitesearch"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitesearch.Extractor at compile time.
var _ sitesearch.Extractor = (*Extractor)(nil)

// Extractor extracts the title and visible text of an HTML page. Script,
// style and noscript elements are removed before text extraction so their
// contents never reach the index.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML and returns its title and visible text.
// The title comes from the <title> element, trimmed; pages without one
// yield an empty title. Text is the concatenation of all visible text
// nodes with whitespace normalized to single spaces.
func (e *Extractor) Extract(htmlSrc string) (*sitesearch.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			writeText(&b, node)
		}
	})

	return &sitesearch.ExtractResult{
		Title: title,
		Text:  strings.Join(strings.Fields(b.String()), " "),
	}, nil
}

// writeText appends the text content of the node tree to b, separating
// text nodes with spaces so adjacent elements never merge into one term.
func writeText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}
