package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/sitesearch"
)

// IDToPath converts a document identifier to a relative Markdown path.
// URL identifiers keep their URL path; file identifiers swap their HTML
// extension. Example: https://example.com/docs/api/users → docs/api/users.md
func IDToPath(id sitesearch.DocumentID) (string, error) {
	raw := string(id)

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", sitesearch.Errorf(sitesearch.EINVALID, "identifier %q is not a valid URL", id)
		}
		p := u.Path
		if p == "" || p == "/" {
			return "index.md", nil
		}
		p = strings.TrimPrefix(p, "/")
		if strings.HasSuffix(p, "/") {
			return p + "index.md", nil
		}
		return trimHTMLExt(p) + ".md", nil
	}

	clean := path.Clean(raw)
	if clean == "." || clean == "/" {
		return "index.md", nil
	}
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", sitesearch.Errorf(sitesearch.EINVALID, "identifier %q cannot map to an export path", id)
	}
	return trimHTMLExt(clean) + ".md", nil
}

func trimHTMLExt(p string) string {
	ext := strings.ToLower(path.Ext(p))
	if ext == ".html" || ext == ".htm" {
		return strings.TrimSuffix(p, path.Ext(p))
	}
	return p
}

// FormatDocument renders a document with YAML frontmatter followed by
// its Markdown content.
func FormatDocument(doc *sitesearch.Document, markdown string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(string(doc.ID))
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	b.WriteString("\ncrawled: ")
	b.WriteString(time.Now().Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}

// Writer exports a crawled corpus as a directory of Markdown files with
// atomic replace semantics. Documents accumulate in a staging directory
// next to the target; Commit swaps it into place, Abort discards it. A
// crash mid-export never leaves a half-written corpus at the target.
type Writer struct {
	baseDir string
	name    string
}

// NewWriter creates a Writer exporting to baseDir/name. Files are staged
// in baseDir/name.tmp until Commit.
func NewWriter(baseDir, name string) *Writer {
	return &Writer{
		baseDir: baseDir,
		name:    name,
	}
}

func (w *Writer) tempDir() string {
	return filepath.Join(w.baseDir, w.name+".tmp")
}

func (w *Writer) finalDir() string {
	return filepath.Join(w.baseDir, w.name)
}

// CreateDocument writes one document to the staging directory as a
// Markdown file with frontmatter.
func (w *Writer) CreateDocument(ctx context.Context, doc *sitesearch.Document, markdown string) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := IDToPath(doc.ID)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.tempDir(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDocument(doc, markdown)), 0644)
}

// Commit atomically replaces the target directory with the staged one.
func (w *Writer) Commit() error {
	if err := os.RemoveAll(w.finalDir()); err != nil {
		return err
	}
	return os.Rename(w.tempDir(), w.finalDir())
}

// Abort removes the staging directory.
func (w *Writer) Abort() error {
	return os.RemoveAll(w.tempDir())
}
