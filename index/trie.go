// Package index builds the in-memory search index: a trie over the
// vocabulary, an inverted index mapping terms to per-document counts, and
// the read-only Corpus aggregate queries run against.
package index

type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

// Trie is the authoritative term dictionary. Membership answers are
// exact; the bloom prefilter in front of it only short-circuits misses.
type Trie struct {
	root *trieNode
	size int
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: &trieNode{}}
}

// Insert adds a term to the dictionary. Inserting an existing term or an
// empty string is a no-op.
func (t *Trie) Insert(term string) {
	if term == "" {
		return
	}
	node := t.root
	for _, r := range term {
		child, ok := node.children[r]
		if !ok {
			if node.children == nil {
				node.children = make(map[rune]*trieNode)
			}
			child = &trieNode{}
			node.children[r] = child
		}
		node = child
	}
	if !node.terminal {
		node.terminal = true
		t.size++
	}
}

// Contains reports whether the exact term was inserted. Prefixes of
// inserted terms do not count as terms themselves.
func (t *Trie) Contains(term string) bool {
	node := t.walk(term)
	return node != nil && node.terminal
}

// HasPrefix reports whether any inserted term starts with prefix. Every
// term is a prefix of itself. The empty prefix matches once the trie
// holds at least one term.
func (t *Trie) HasPrefix(prefix string) bool {
	if prefix == "" {
		return t.size > 0
	}
	return t.walk(prefix) != nil
}

// Len returns the number of distinct terms.
func (t *Trie) Len() int {
	return t.size
}

func (t *Trie) walk(s string) *trieNode {
	node := t.root
	for _, r := range s {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}
