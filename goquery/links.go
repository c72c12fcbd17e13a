package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitesearch"
)

// Ensure PathLinkExtractor implements sitesearch.LinkExtractor at compile time.
var _ sitesearch.LinkExtractor = (*PathLinkExtractor)(nil)

// PathLinkExtractor classifies the anchors of a file-corpus page.
// Relative hrefs ending in .html or .htm resolve against the linking
// page's directory and become internal identifiers; root-relative hrefs
// resolve against the corpus root. Absolute http(s) URLs are recorded as
// external. Asset links, non-HTTP schemes and paths escaping the corpus
// root are dropped.
type PathLinkExtractor struct{}

// NewPathLinkExtractor creates a new PathLinkExtractor.
func NewPathLinkExtractor() *PathLinkExtractor {
	return &PathLinkExtractor{}
}

// ExtractLinks parses the HTML and classifies every anchor. Fragments
// and query strings are stripped before resolution, so anchor navigation
// within a page yields no link. Both lists are deduplicated keeping the
// first occurrence in document order.
func (e *PathLinkExtractor) ExtractLinks(htmlSrc string, from sitesearch.DocumentID) (*sitesearch.Links, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "failed to parse HTML: %v", err)
	}

	links := &sitesearch.Links{}
	seenInternal := make(map[sitesearch.DocumentID]struct{})
	seenExternal := make(map[string]struct{})

	dir := path.Dir(string(from))

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || isNonHTTPLink(href) {
			return
		}

		// Fragments and queries never distinguish corpus files.
		href, _, _ = strings.Cut(href, "#")
		href, _, _ = strings.Cut(href, "?")
		if href == "" {
			return
		}

		if isAbsoluteURL(href) {
			if _, dup := seenExternal[href]; dup {
				return
			}
			seenExternal[href] = struct{}{}
			links.External = append(links.External, href)
			return
		}

		if !isPagePath(href) {
			return
		}

		resolved := resolvePath(dir, href)
		if resolved == "" {
			return
		}
		id := sitesearch.DocumentID(resolved)
		if _, dup := seenInternal[id]; dup {
			return
		}
		seenInternal[id] = struct{}{}
		links.Internal = append(links.Internal, id)
	})

	return links, nil
}

// Ensure URLLinkExtractor implements sitesearch.LinkExtractor at compile time.
var _ sitesearch.LinkExtractor = (*URLLinkExtractor)(nil)

// URLLinkExtractor classifies the anchors of a web-corpus page. Hrefs
// resolve against the linking page's URL; resolved links on the crawl
// host are internal, everything else is external. Fragments are stripped
// and self-referential links dropped, so anchor navigation never
// re-enqueues a page.
type URLLinkExtractor struct {
	host string
}

// NewURLLinkExtractor creates a URLLinkExtractor that keeps links on the
// host of base internal. Host matching is exact; subdomains count as
// different hosts.
func NewURLLinkExtractor(base string) (*URLLinkExtractor, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "invalid base URL: %v", err)
	}
	if u.Host == "" {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "base URL %q has no host", base)
	}
	return &URLLinkExtractor{host: u.Host}, nil
}

// ExtractLinks parses the HTML and classifies every anchor. Both lists
// are deduplicated keeping the first occurrence in document order.
func (e *URLLinkExtractor) ExtractLinks(htmlSrc string, from sitesearch.DocumentID) (*sitesearch.Links, error) {
	base, err := url.Parse(string(from))
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "invalid page URL %q: %v", from, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "failed to parse HTML: %v", err)
	}

	links := &sitesearch.Links{}
	seenInternal := make(map[sitesearch.DocumentID]struct{})
	seenExternal := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		u, err := url.Parse(resolved)
		if err != nil {
			return
		}

		if u.Host == e.host {
			id := sitesearch.DocumentID(resolved)
			if _, dup := seenInternal[id]; dup {
				return
			}
			seenInternal[id] = struct{}{}
			links.Internal = append(links.Internal, id)
			return
		}

		if _, dup := seenExternal[resolved]; dup {
			return
		}
		seenExternal[resolved] = struct{}{}
		links.External = append(links.External, resolved)
	})

	return links, nil
}

// resolvePath resolves a slash-separated href against the directory of
// the linking page. Root-relative hrefs resolve against the corpus root.
// Returns empty string when the result escapes the corpus root.
func resolvePath(dir, href string) string {
	var resolved string
	if strings.HasPrefix(href, "/") {
		resolved = path.Clean(strings.TrimPrefix(href, "/"))
	} else {
		resolved = path.Join(dir, href)
	}
	if resolved == ".." || strings.HasPrefix(resolved, "../") {
		return ""
	}
	return resolved
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential (same as base URL after stripping fragment).
// Fragments are stripped from the resolved URL for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isPagePath reports whether the href points at an HTML page.
func isPagePath(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}

// isAbsoluteURL reports whether the href is an absolute or
// protocol-relative web URL.
func isAbsoluteURL(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//")
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
