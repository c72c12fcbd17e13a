// Package rank implements relevance scoring: smoothed TF-IDF per term
// plus a link popularity bonus per document.
package rank

import (
	"math"

	"github.com/fwojciec/sitesearch"
)

// TF returns the occurrence count of a term normalized by document
// length. docLen must be positive; any document with an occurrence has at
// least one term.
func TF(freq, docLen int) float64 {
	return float64(freq) / float64(docLen)
}

// IDF returns the smoothed inverse document frequency:
// ln((1+n)/(1+df)) + 1. Always positive. A term present in every
// document scores exactly 1; rarer terms score higher, up to
// ln(1+n) + 1.
func IDF(df, n int) float64 {
	return math.Log(float64(1+n)/float64(1+df)) + 1
}

// Scorer computes per-term scores and the popularity bonus under a
// configured rank mode.
type Scorer struct {
	// Mode selects the per-term function. The zero value scores TF-IDF.
	Mode sitesearch.RankMode

	// LinkBonus is the score added per inbound link.
	LinkBonus float64
}

// NewScorer creates a Scorer with the default link bonus weight.
func NewScorer(mode sitesearch.RankMode) *Scorer {
	return &Scorer{Mode: mode, LinkBonus: sitesearch.DefaultLinkBonus}
}

// TermScore scores one term against one document. freq is the occurrence
// count in the document (at least one), docLen the document's total term
// count, df the number of documents containing the term, and n the
// corpus size.
func (s *Scorer) TermScore(freq, docLen, df, n int) float64 {
	if s.Mode == sitesearch.RankFrequency {
		return float64(freq)
	}
	return TF(freq, docLen) * IDF(df, n)
}

// Bonus returns the popularity bonus for a document with the given
// inbound link count. The caller adds it exactly once per result
// document, and only to documents matching at least one term.
func (s *Scorer) Bonus(inbound int) float64 {
	return s.LinkBonus * float64(inbound)
}
