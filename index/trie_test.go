package index_test

import (
	"testing"

	"github.com/fwojciec/sitesearch/index"
	"github.com/stretchr/testify/assert"
)

func TestTrie_InsertAndContains(t *testing.T) {
	t.Parallel()

	tr := index.NewTrie()
	tr.Insert("python")
	tr.Insert("java")

	assert.True(t, tr.Contains("python"))
	assert.True(t, tr.Contains("java"))
	assert.False(t, tr.Contains("rust"))
}

func TestTrie_Contains_PrefixIsNotATerm(t *testing.T) {
	t.Parallel()

	tr := index.NewTrie()
	tr.Insert("play")

	assert.False(t, tr.Contains("pl"), "prefix of an inserted term is not a term")
	assert.False(t, tr.Contains("player"), "extension of an inserted term is not a term")
	assert.True(t, tr.Contains("play"))
}

func TestTrie_Contains_EmptyString(t *testing.T) {
	t.Parallel()

	tr := index.NewTrie()
	tr.Insert("play")

	assert.False(t, tr.Contains(""))
}

func TestTrie_HasPrefix(t *testing.T) {
	t.Parallel()

	t.Run("matches proper prefixes and exact terms", func(t *testing.T) {
		t.Parallel()

		tr := index.NewTrie()
		tr.Insert("channel")

		assert.True(t, tr.HasPrefix("chan"))
		assert.True(t, tr.HasPrefix("channel"), "a term is a prefix of itself")
		assert.False(t, tr.HasPrefix("channels"))
		assert.False(t, tr.HasPrefix("x"))
	})

	t.Run("empty prefix matches once the trie is non-empty", func(t *testing.T) {
		t.Parallel()

		tr := index.NewTrie()
		assert.False(t, tr.HasPrefix(""))

		tr.Insert("a")
		assert.True(t, tr.HasPrefix(""))
	})
}

func TestTrie_Insert_Idempotent(t *testing.T) {
	t.Parallel()

	tr := index.NewTrie()
	tr.Insert("python")
	tr.Insert("python")
	tr.Insert("python")

	assert.Equal(t, 1, tr.Len())
	assert.True(t, tr.Contains("python"))
}

func TestTrie_Insert_IgnoresEmptyString(t *testing.T) {
	t.Parallel()

	tr := index.NewTrie()
	tr.Insert("")

	assert.Equal(t, 0, tr.Len())
	assert.False(t, tr.Contains(""))
	assert.False(t, tr.HasPrefix(""))
}

func TestTrie_HandlesUnicodeTerms(t *testing.T) {
	t.Parallel()

	tr := index.NewTrie()
	tr.Insert("über")

	assert.True(t, tr.Contains("über"))
	assert.True(t, tr.HasPrefix("ü"))
	assert.False(t, tr.Contains("uber"))
}

func TestTrie_Len(t *testing.T) {
	t.Parallel()

	tr := index.NewTrie()
	tr.Insert("go")
	tr.Insert("gopher")
	tr.Insert("god")

	assert.Equal(t, 3, tr.Len(), "nested terms count individually")
}
