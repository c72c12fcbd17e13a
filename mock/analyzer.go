package mock

import "github.com/fwojciec/sitesearch"

var _ sitesearch.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of sitesearch.Analyzer.
type Analyzer struct {
	AnalyzeFn func(text string) []string
}

func (a *Analyzer) Analyze(text string) []string {
	return a.AnalyzeFn(text)
}

var _ sitesearch.TermFilter = (*TermFilter)(nil)

// TermFilter is a mock implementation of sitesearch.TermFilter.
type TermFilter struct {
	FilterFn func(term string) string
}

func (f *TermFilter) Filter(term string) string {
	return f.FilterFn(term)
}
