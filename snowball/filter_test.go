package snowball_test

import (
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/snowball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("implements sitesearch.TermFilter interface", func(t *testing.T) {
		t.Parallel()

		f, err := snowball.NewFilter("")
		require.NoError(t, err)
		var _ sitesearch.TermFilter = f
	})

	t.Run("stems English terms to a common root", func(t *testing.T) {
		t.Parallel()

		f, err := snowball.NewFilter("english")
		require.NoError(t, err)

		assert.Equal(t, "run", f.Filter("running"))
		assert.Equal(t, "cat", f.Filter("cats"))
		assert.Equal(t, "search", f.Filter("searching"))
		assert.Equal(t, "search", f.Filter("searched"))
	})

	t.Run("leaves root forms unchanged", func(t *testing.T) {
		t.Parallel()

		f, err := snowball.NewFilter("english")
		require.NoError(t, err)

		assert.Equal(t, "run", f.Filter("run"))
		assert.Equal(t, "python", f.Filter("python"))
	})

	t.Run("defaults to English", func(t *testing.T) {
		t.Parallel()

		f, err := snowball.NewFilter("")
		require.NoError(t, err)

		assert.Equal(t, "index", f.Filter("indexes"))
	})

	t.Run("rejects unsupported languages", func(t *testing.T) {
		t.Parallel()

		_, err := snowball.NewFilter("klingon")

		require.Error(t, err)
		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})

	t.Run("normalizes query and document terms identically", func(t *testing.T) {
		t.Parallel()

		f, err := snowball.NewFilter("english")
		require.NoError(t, err)

		tok := sitesearch.NewTokenizer(sitesearch.DefaultStopwords(), sitesearch.WithTermFilter(f))

		docTerms := tok.Analyze("Searching the index quickly")
		queryTerms := tok.Analyze("searched")

		require.NotEmpty(t, queryTerms)
		assert.Contains(t, docTerms, queryTerms[0],
			"stemmed query terms must match stemmed document terms")
	})
}
