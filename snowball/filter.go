// Package snowball implements term normalization by Snowball stemming.
package snowball

import (
	"github.com/fwojciec/sitesearch"
	"github.com/kljensen/snowball"
)

// Ensure Filter implements sitesearch.TermFilter at compile time.
var _ sitesearch.TermFilter = (*Filter)(nil)

// Filter stems terms so inflected forms ("searching", "searched")
// collapse to one index term. Indexing and querying must share a single
// Filter; stemming only one side breaks term matching.
type Filter struct {
	language string
}

// NewFilter creates a Filter for the given language. An empty language
// selects English. Returns EINVALID for languages the stemmer does not
// support.
func NewFilter(language string) (*Filter, error) {
	if language == "" {
		language = "english"
	}
	if _, err := snowball.Stem("probe", language, true); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "unsupported stemmer language %q", language)
	}
	return &Filter{language: language}, nil
}

// Filter returns the stem of the term. Terms the stemmer cannot process
// pass through unchanged.
func (f *Filter) Filter(term string) string {
	stemmed, err := snowball.Stem(term, f.language, true)
	if err != nil {
		return term
	}
	return stemmed
}
