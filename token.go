package sitesearch

import (
	"strings"
	"unicode"
)

// Analyzer turns raw text into the normalized term sequence used by the
// index. Indexing and querying must share a single Analyzer; mixing
// configurations silently breaks term matching.
type Analyzer interface {
	// Analyze returns the terms of the text in document order, duplicates
	// preserved. Empty or symbol-only input yields an empty sequence.
	Analyze(text string) []string
}

// TermFilter transforms a single normalized term, e.g. stemming.
// Returning an empty string drops the term.
type TermFilter interface {
	Filter(term string) string
}

// StopwordSet is a set of words excluded from the index.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a set from a word list. Words are lowercased.
func NewStopwordSet(words []string) StopwordSet {
	s := make(StopwordSet, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Contains reports whether the word is a stop word. The word must already
// be lowercase.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Ensure Tokenizer implements Analyzer at compile time.
var _ Analyzer = (*Tokenizer)(nil)

// Tokenizer is the standard Analyzer: maximal runs of letters and digits,
// lowercased, stop words dropped, optional per-term filter applied.
type Tokenizer struct {
	stop   StopwordSet
	filter TermFilter
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithTermFilter applies a filter (e.g. a stemmer) to every term that
// survives stop word removal.
func WithTermFilter(f TermFilter) TokenizerOption {
	return func(t *Tokenizer) {
		t.filter = f
	}
}

// NewTokenizer creates a Tokenizer with the given stop word set.
func NewTokenizer(stop StopwordSet, opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{stop: stop}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Analyze splits text into maximal letter/digit runs, lowercases them, and
// drops stop words. Unicode letters count as word characters.
func (t *Tokenizer) Analyze(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		term := strings.ToLower(f)
		if t.stop.Contains(term) {
			continue
		}
		if t.filter != nil {
			term = t.filter.Filter(term)
			if term == "" {
				continue
			}
		}
		terms = append(terms, term)
	}
	return terms
}
