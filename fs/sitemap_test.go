package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSitemap(t *testing.T) {
	t.Parallel()

	t.Run("reads seed identifiers from a urlset in document order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "sitemap.xml", `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>index.html</loc></url>
  <url><loc> docs/guide.html </loc></url>
  <url><loc>docs/api.html</loc></url>
</urlset>`)

		seeds, err := fs.ReadSitemap(filepath.Join(dir, "sitemap.xml"))

		require.NoError(t, err)
		assert.Equal(t, []sitesearch.DocumentID{
			"index.html",
			"docs/guide.html",
			"docs/api.html",
		}, seeds, "loc values should be trimmed and kept in order")
	})

	t.Run("skips url entries without a loc", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "sitemap.xml", `<urlset>
  <url><lastmod>2026-01-01</lastmod></url>
  <url><loc>a.html</loc></url>
  <url><loc></loc></url>
</urlset>`)

		seeds, err := fs.ReadSitemap(filepath.Join(dir, "sitemap.xml"))

		require.NoError(t, err)
		assert.Equal(t, []sitesearch.DocumentID{"a.html"}, seeds)
	})

	t.Run("recurses into a sitemap index", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "sitemap.xml", `<sitemapindex>
  <sitemap><loc>maps/first.xml</loc></sitemap>
  <sitemap><loc>maps/second.xml</loc></sitemap>
</sitemapindex>`)
		writeFile(t, dir, "maps/first.xml", `<urlset>
  <url><loc>a.html</loc></url>
</urlset>`)
		writeFile(t, dir, "maps/second.xml", `<urlset>
  <url><loc>b.html</loc></url>
</urlset>`)

		seeds, err := fs.ReadSitemap(filepath.Join(dir, "sitemap.xml"))

		require.NoError(t, err)
		assert.Equal(t, []sitesearch.DocumentID{"a.html", "b.html"}, seeds,
			"relative references resolve against the index's directory")
	})

	t.Run("terminates on index cycles", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.xml", `<sitemapindex>
  <sitemap><loc>b.xml</loc></sitemap>
</sitemapindex>`)
		writeFile(t, dir, "b.xml", `<sitemapindex>
  <sitemap><loc>a.xml</loc></sitemap>
  <sitemap><loc>pages.xml</loc></sitemap>
</sitemapindex>`)
		writeFile(t, dir, "pages.xml", `<urlset>
  <url><loc>index.html</loc></url>
</urlset>`)

		seeds, err := fs.ReadSitemap(filepath.Join(dir, "a.xml"))

		require.NoError(t, err)
		assert.Equal(t, []sitesearch.DocumentID{"index.html"}, seeds)
	})

	t.Run("returns EINVALID for an unsupported root element", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "sitemap.xml", `<rss version="2.0"><channel></channel></rss>`)

		_, err := fs.ReadSitemap(filepath.Join(dir, "sitemap.xml"))

		require.Error(t, err)
		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})

	t.Run("returns EINVALID for a file with no root element", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "sitemap.xml", "")

		_, err := fs.ReadSitemap(filepath.Join(dir, "sitemap.xml"))

		require.Error(t, err)
		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadSitemap(filepath.Join(t.TempDir(), "missing.xml"))

		require.Error(t, err)
		assert.Equal(t, sitesearch.ENOTFOUND, sitesearch.ErrorCode(err))
	})
}
