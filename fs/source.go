// Package fs provides the file-backed corpus source and Markdown export.
package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/sitesearch"
)

// Ensure Source implements the corpus source interfaces at compile time.
var (
	_ sitesearch.Fetcher    = (*Source)(nil)
	_ sitesearch.SeedSource = (*Source)(nil)
)

// Source serves a corpus from a directory of HTML files. Identifiers
// are slash-separated paths relative to the directory root; an
// identifier never escapes it.
type Source struct {
	dir string
}

// NewSource creates a Source rooted at dir.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Fetch reads the HTML file for the identifier.
// Returns EINVALID for absolute identifiers or identifiers escaping the
// root, ENOTFOUND when no such file exists.
func (s *Source) Fetch(ctx context.Context, id sitesearch.DocumentID) (string, error) {
	rel, err := s.relPath(id)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, rel))
	if err != nil {
		if os.IsNotExist(err) {
			return "", sitesearch.Errorf(sitesearch.ENOTFOUND, "page %q not found", id)
		}
		return "", err
	}
	return string(data), nil
}

// Seeds returns every .html and .htm file under the root as an
// identifier, sorted lexicographically so crawls are reproducible.
func (s *Source) Seeds(ctx context.Context) ([]sitesearch.DocumentID, error) {
	var seeds []sitesearch.DocumentID
	err := filepath.WalkDir(s.dir, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		if ext != ".html" && ext != ".htm" {
			return nil
		}
		rel, err := filepath.Rel(s.dir, p)
		if err != nil {
			return err
		}
		seeds = append(seeds, sitesearch.DocumentID(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(seeds, func(i, j int) bool { return seeds[i] < seeds[j] })
	return seeds, nil
}

// relPath validates the identifier and converts it to a filesystem path
// relative to the source root.
func (s *Source) relPath(id sitesearch.DocumentID) (string, error) {
	p := string(id)
	if p == "" {
		return "", sitesearch.Errorf(sitesearch.EINVALID, "empty identifier")
	}
	if path.IsAbs(p) {
		return "", sitesearch.Errorf(sitesearch.EINVALID, "identifier %q must be relative", id)
	}
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", sitesearch.Errorf(sitesearch.EINVALID, "identifier %q escapes the corpus root", id)
	}
	return filepath.FromSlash(clean), nil
}
