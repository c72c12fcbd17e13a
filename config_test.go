package sitesearch_test

import (
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchMode(t *testing.T) {
	t.Parallel()

	t.Run("accepts known modes", func(t *testing.T) {
		t.Parallel()

		m, err := sitesearch.ParseMatchMode("any")
		require.NoError(t, err)
		assert.Equal(t, sitesearch.MatchAny, m)

		m, err = sitesearch.ParseMatchMode("all")
		require.NoError(t, err)
		assert.Equal(t, sitesearch.MatchAll, m)
	})

	t.Run("defaults empty string to any", func(t *testing.T) {
		t.Parallel()

		m, err := sitesearch.ParseMatchMode("")
		require.NoError(t, err)
		assert.Equal(t, sitesearch.MatchAny, m)
	})

	t.Run("rejects unknown modes", func(t *testing.T) {
		t.Parallel()

		_, err := sitesearch.ParseMatchMode("fuzzy")
		require.Error(t, err)
		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})
}

func TestParseRankMode(t *testing.T) {
	t.Parallel()

	t.Run("accepts known modes", func(t *testing.T) {
		t.Parallel()

		m, err := sitesearch.ParseRankMode("tfidf")
		require.NoError(t, err)
		assert.Equal(t, sitesearch.RankTFIDF, m)

		m, err = sitesearch.ParseRankMode("freq")
		require.NoError(t, err)
		assert.Equal(t, sitesearch.RankFrequency, m)
	})

	t.Run("defaults empty string to tfidf", func(t *testing.T) {
		t.Parallel()

		m, err := sitesearch.ParseRankMode("")
		require.NoError(t, err)
		assert.Equal(t, sitesearch.RankTFIDF, m)
	})

	t.Run("rejects unknown modes", func(t *testing.T) {
		t.Parallel()

		_, err := sitesearch.ParseRankMode("bm25")
		require.Error(t, err)
		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})
}
