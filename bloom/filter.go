// Package bloom provides a probabilistic vocabulary prefilter.
//
// The filter sits in front of the trie: a negative answer proves a term
// was never indexed and short-circuits the lookup, a positive answer
// falls through to the authoritative trie check.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter over index terms.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected terms with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a term to the filter.
func (f *Filter) Add(term string) {
	f.f.AddString(term)
}

// Test returns true if the term might be in the vocabulary.
// False positives are possible; false negatives are not, so a false
// result is a definite miss.
func (f *Filter) Test(term string) bool {
	return f.f.TestString(term)
}

// EstimatedCount returns the approximate number of terms in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
