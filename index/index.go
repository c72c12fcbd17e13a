package index

import "github.com/fwojciec/sitesearch"

// Index is the inverted index: per term, the documents containing it with
// occurrence counts. A stored count is always at least one; documents
// that do not contain a term have no entry for it.
type Index struct {
	postings map[string]map[sitesearch.DocumentID]int
	docLen   map[sitesearch.DocumentID]int
}

// NewIndex creates an empty inverted index.
func NewIndex() *Index {
	return &Index{
		postings: make(map[string]map[sitesearch.DocumentID]int),
		docLen:   make(map[sitesearch.DocumentID]int),
	}
}

// AddDocument indexes the term sequence of one document. Duplicates in
// terms accumulate into counts; the total length is recorded for TF
// normalization. A second call for the same identifier is ignored.
func (ix *Index) AddDocument(id sitesearch.DocumentID, terms []string) {
	if _, ok := ix.docLen[id]; ok {
		return
	}

	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	for term, n := range counts {
		docs, ok := ix.postings[term]
		if !ok {
			docs = make(map[sitesearch.DocumentID]int)
			ix.postings[term] = docs
		}
		docs[id] = n
	}
	ix.docLen[id] = len(terms)
}

// Postings returns the documents containing term with their occurrence
// counts. Unknown terms return a nil map, which ranges as empty. Callers
// must not mutate the result.
func (ix *Index) Postings(term string) map[sitesearch.DocumentID]int {
	return ix.postings[term]
}

// DocFrequency returns the number of documents containing term.
func (ix *Index) DocFrequency(term string) int {
	return len(ix.postings[term])
}

// DocLength returns the total term count of the document, duplicates
// included. Unknown identifiers return zero.
func (ix *Index) DocLength(id sitesearch.DocumentID) int {
	return ix.docLen[id]
}

// Terms returns the number of distinct indexed terms.
func (ix *Index) Terms() int {
	return len(ix.postings)
}
