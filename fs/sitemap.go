package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitesearch"
)

// ReadSitemap reads seed identifiers from a local XML sitemap manifest.
// A <urlset> document contributes its <url><loc> values in document
// order; a <sitemapindex> document recurses into the referenced files,
// resolving relative references against the manifest's directory.
// Already-visited files are skipped, so index cycles terminate.
func ReadSitemap(filename string) ([]sitesearch.DocumentID, error) {
	return readSitemap(filename, make(map[string]struct{}))
}

func readSitemap(filename string, visited map[string]struct{}) ([]sitesearch.DocumentID, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	if _, ok := visited[abs]; ok {
		return nil, nil
	}
	visited[abs] = struct{}{}

	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sitesearch.Errorf(sitesearch.ENOTFOUND, "sitemap %q not found", filename)
		}
		return nil, err
	}
	defer f.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(f); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "failed to parse sitemap %q: %v", filename, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "sitemap %q has no root element", filename)
	}

	switch root.Tag {
	case "urlset":
		return parseURLSet(root), nil
	case "sitemapindex":
		return parseSitemapIndex(root, filepath.Dir(filename), visited)
	default:
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "sitemap %q has unsupported root element <%s>", filename, root.Tag)
	}
}

// parseURLSet extracts seed identifiers from a <urlset> element.
func parseURLSet(root *etree.Element) []sitesearch.DocumentID {
	var seeds []sitesearch.DocumentID
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		id := strings.TrimSpace(loc.Text())
		if id != "" {
			seeds = append(seeds, sitesearch.DocumentID(id))
		}
	}
	return seeds
}

// parseSitemapIndex processes a <sitemapindex> element recursively.
func parseSitemapIndex(root *etree.Element, dir string, visited map[string]struct{}) ([]sitesearch.DocumentID, error) {
	var seeds []sitesearch.DocumentID
	for _, sm := range root.SelectElements("sitemap") {
		loc := sm.SelectElement("loc")
		if loc == nil {
			continue
		}
		ref := strings.TrimSpace(loc.Text())
		if ref == "" {
			continue
		}
		if !filepath.IsAbs(ref) {
			ref = filepath.Join(dir, filepath.FromSlash(ref))
		}
		nested, err := readSitemap(ref, visited)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, nested...)
	}
	return seeds, nil
}
