package index_test

import (
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestCorpus(t *testing.T) *index.Corpus {
	t.Helper()

	graph := sitesearch.NewLinkGraph()
	graph.Add("a.html", []sitesearch.DocumentID{"b.html"})
	graph.Add("b.html", []sitesearch.DocumentID{"a.html", "c.html"})
	graph.Add("c.html", nil)

	docs := []*sitesearch.Document{
		{ID: "a.html", Title: "Python Guide", Terms: []string{"python", "guide", "python"}},
		{ID: "b.html", Title: "Java Guide", Terms: []string{"java", "guide"}},
		{ID: "c.html", Title: "Empty"},
	}

	return index.Build(docs, graph)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("indexes term counts per document", func(t *testing.T) {
		t.Parallel()

		c := buildTestCorpus(t)

		assert.Equal(t, map[sitesearch.DocumentID]int{"a.html": 2}, c.Postings("python"))
		assert.Equal(t, map[sitesearch.DocumentID]int{"a.html": 1, "b.html": 1}, c.Postings("guide"))
	})

	t.Run("counts zero term documents toward N", func(t *testing.T) {
		t.Parallel()

		c := buildTestCorpus(t)

		assert.Equal(t, 3, c.N())
		doc, ok := c.Document("c.html")
		require.True(t, ok)
		assert.Equal(t, "Empty", doc.Title)
		assert.Equal(t, 0, c.DocLength("c.html"))
	})

	t.Run("keeps the first document on duplicate identifiers", func(t *testing.T) {
		t.Parallel()

		docs := []*sitesearch.Document{
			{ID: "a.html", Title: "First", Terms: []string{"one"}},
			{ID: "a.html", Title: "Second", Terms: []string{"two"}},
		}
		c := index.Build(docs, nil)

		assert.Equal(t, 1, c.N())
		doc, ok := c.Document("a.html")
		require.True(t, ok)
		assert.Equal(t, "First", doc.Title)
		assert.True(t, c.HasTerm("one"))
		assert.False(t, c.HasTerm("two"))
	})

	t.Run("accepts a nil graph", func(t *testing.T) {
		t.Parallel()

		c := index.Build([]*sitesearch.Document{{ID: "a.html", Terms: []string{"x"}}}, nil)

		assert.Equal(t, 0, c.InboundCount("a.html"))
	})

	t.Run("builds deterministically", func(t *testing.T) {
		t.Parallel()

		first := buildTestCorpus(t)
		second := buildTestCorpus(t)

		assert.Equal(t, first.N(), second.N())
		assert.Equal(t, first.Terms(), second.Terms())
		assert.Equal(t, first.Postings("guide"), second.Postings("guide"))
		assert.Equal(t, first.Documents(), second.Documents())
	})
}

func TestCorpus_HasTerm(t *testing.T) {
	t.Parallel()

	t.Run("agrees with postings presence", func(t *testing.T) {
		t.Parallel()

		c := buildTestCorpus(t)

		for _, term := range []string{"python", "java", "guide"} {
			assert.True(t, c.HasTerm(term), term)
			assert.NotEmpty(t, c.Postings(term), term)
		}
		for _, term := range []string{"fortran", "pyth", "pythons", ""} {
			assert.False(t, c.HasTerm(term), term)
			assert.Empty(t, c.Postings(term), term)
		}
	})
}

func TestCorpus_HasPrefix(t *testing.T) {
	t.Parallel()

	c := buildTestCorpus(t)

	assert.True(t, c.HasPrefix("pyth"))
	assert.True(t, c.HasPrefix("java"))
	assert.False(t, c.HasPrefix("fort"))
}

func TestCorpus_Documents_PreservesDiscoveryOrder(t *testing.T) {
	t.Parallel()

	c := buildTestCorpus(t)

	docs := c.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, sitesearch.DocumentID("a.html"), docs[0].ID)
	assert.Equal(t, sitesearch.DocumentID("b.html"), docs[1].ID)
	assert.Equal(t, sitesearch.DocumentID("c.html"), docs[2].ID)
}

func TestCorpus_InboundCount(t *testing.T) {
	t.Parallel()

	c := buildTestCorpus(t)

	assert.Equal(t, 1, c.InboundCount("a.html"))
	assert.Equal(t, 1, c.InboundCount("b.html"))
	assert.Equal(t, 1, c.InboundCount("c.html"))
	assert.Equal(t, 0, c.InboundCount("missing.html"))
}

func TestCorpus_DocFrequency(t *testing.T) {
	t.Parallel()

	c := buildTestCorpus(t)

	assert.Equal(t, 2, c.DocFrequency("guide"))
	assert.Equal(t, 1, c.DocFrequency("python"))
	assert.Equal(t, 0, c.DocFrequency("fortran"))
}
