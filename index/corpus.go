package index

import (
	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/bloom"
)

// vocabFPRate sizes the bloom prefilter over the vocabulary.
const vocabFPRate = 0.01

// Corpus is the read-only aggregate a query engine runs against:
// documents by identifier, the link graph, the term dictionary, and the
// inverted index. Once Build returns, nothing mutates the corpus and it
// is safe for any number of concurrent readers.
type Corpus struct {
	docs  map[sitesearch.DocumentID]*sitesearch.Document
	order []sitesearch.DocumentID
	graph *sitesearch.LinkGraph
	trie  *Trie
	index *Index
	vocab *bloom.Filter
}

// Build indexes the documents in one pass over the crawl output. The
// slice must be in discovery order; building twice from the same input
// yields an identical corpus. Documents with duplicate identifiers are
// kept first-wins. A nil graph is treated as empty.
func Build(docs []*sitesearch.Document, graph *sitesearch.LinkGraph) *Corpus {
	if graph == nil {
		graph = sitesearch.NewLinkGraph()
	}

	c := &Corpus{
		docs:  make(map[sitesearch.DocumentID]*sitesearch.Document, len(docs)),
		order: make([]sitesearch.DocumentID, 0, len(docs)),
		graph: graph,
		trie:  NewTrie(),
		index: NewIndex(),
	}

	for _, doc := range docs {
		if _, ok := c.docs[doc.ID]; ok {
			continue
		}
		c.docs[doc.ID] = doc
		c.order = append(c.order, doc.ID)
		c.index.AddDocument(doc.ID, doc.Terms)
	}

	vocabSize := c.index.Terms()
	if vocabSize == 0 {
		vocabSize = 1
	}
	c.vocab = bloom.NewFilter(uint(vocabSize), vocabFPRate)
	for term := range c.index.postings {
		c.trie.Insert(term)
		c.vocab.Add(term)
	}

	return c
}

// N returns the number of indexed documents.
func (c *Corpus) N() int {
	return len(c.order)
}

// Document returns the document with the given identifier.
func (c *Corpus) Document(id sitesearch.DocumentID) (*sitesearch.Document, bool) {
	doc, ok := c.docs[id]
	return doc, ok
}

// Documents returns all documents in discovery order.
func (c *Corpus) Documents() []*sitesearch.Document {
	docs := make([]*sitesearch.Document, 0, len(c.order))
	for _, id := range c.order {
		docs = append(docs, c.docs[id])
	}
	return docs
}

// HasTerm reports whether the term is in the vocabulary. The bloom
// prefilter rejects definite misses; the trie answer is authoritative.
func (c *Corpus) HasTerm(term string) bool {
	if !c.vocab.Test(term) {
		return false
	}
	return c.trie.Contains(term)
}

// HasPrefix reports whether any vocabulary term starts with prefix.
func (c *Corpus) HasPrefix(prefix string) bool {
	return c.trie.HasPrefix(prefix)
}

// Postings returns the documents containing term with occurrence counts.
// Unknown terms return a nil map, which ranges as empty.
func (c *Corpus) Postings(term string) map[sitesearch.DocumentID]int {
	return c.index.Postings(term)
}

// DocFrequency returns the number of documents containing term.
func (c *Corpus) DocFrequency(term string) int {
	return c.index.DocFrequency(term)
}

// DocLength returns the total term count of a document.
func (c *Corpus) DocLength(id sitesearch.DocumentID) int {
	return c.index.DocLength(id)
}

// Terms returns the number of distinct indexed terms.
func (c *Corpus) Terms() int {
	return c.index.Terms()
}

// InboundCount returns the number of distinct documents linking to id.
func (c *Corpus) InboundCount(id sitesearch.DocumentID) int {
	return c.graph.InboundCount(id)
}

// Graph returns the link graph the corpus was built with.
func (c *Corpus) Graph() *sitesearch.LinkGraph {
	return c.graph
}
