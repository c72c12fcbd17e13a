// Package search implements the query engine over an indexed corpus.
package search

import (
	"context"
	"sort"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/index"
	"github.com/fwojciec/sitesearch/rank"
)

// Ensure Engine implements sitesearch.Searcher at compile time.
var _ sitesearch.Searcher = (*Engine)(nil)

// Engine answers queries against a built corpus. It must be constructed
// with the same Analyzer the corpus was indexed with. Engines hold no
// mutable state; one engine serves any number of concurrent queries.
type Engine struct {
	corpus   *index.Corpus
	analyzer sitesearch.Analyzer
	scorer   *rank.Scorer
	mode     sitesearch.MatchMode
}

// NewEngine creates a query engine. A nil scorer falls back to TF-IDF
// with the default link bonus; an empty mode falls back to MatchAny.
func NewEngine(corpus *index.Corpus, analyzer sitesearch.Analyzer, scorer *rank.Scorer, mode sitesearch.MatchMode) *Engine {
	if scorer == nil {
		scorer = rank.NewScorer(sitesearch.RankTFIDF)
	}
	if mode == "" {
		mode = sitesearch.MatchAny
	}
	return &Engine{
		corpus:   corpus,
		analyzer: analyzer,
		scorer:   scorer,
		mode:     mode,
	}
}

// Search tokenizes the query, gathers candidates under the match mode,
// scores them, and returns hits ordered by descending score with ties
// broken by ascending document ID. Empty queries and queries without any
// known term return an empty slice.
func (e *Engine) Search(ctx context.Context, query string) ([]sitesearch.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	terms := e.queryTerms(query)
	if len(terms) == 0 {
		return []sitesearch.Result{}, nil
	}

	candidates := e.candidates(terms)
	if len(candidates) == 0 {
		return []sitesearch.Result{}, nil
	}

	n := e.corpus.N()
	results := make([]sitesearch.Result, 0, len(candidates))
	for id := range candidates {
		score := 0.0
		for _, term := range terms {
			freq := e.corpus.Postings(term)[id]
			if freq == 0 {
				continue
			}
			score += e.scorer.TermScore(freq, e.corpus.DocLength(id), e.corpus.DocFrequency(term), n)
		}
		score += e.scorer.Bonus(e.corpus.InboundCount(id))

		var title string
		if doc, ok := e.corpus.Document(id); ok {
			title = doc.Title
		}
		results = append(results, sitesearch.Result{ID: id, Title: title, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	return results, nil
}

// queryTerms analyzes the query and keeps distinct vocabulary terms in
// first occurrence order. The trie answer is authoritative; postings are
// only consulted for terms that pass it. Terms outside the vocabulary
// are skipped silently.
func (e *Engine) queryTerms(query string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, term := range e.analyzer.Analyze(query) {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		if !e.corpus.HasTerm(term) {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

func (e *Engine) candidates(terms []string) map[sitesearch.DocumentID]struct{} {
	if e.mode == sitesearch.MatchAll {
		return e.intersect(terms)
	}
	return e.union(terms)
}

// union keeps every document containing at least one term.
func (e *Engine) union(terms []string) map[sitesearch.DocumentID]struct{} {
	out := make(map[sitesearch.DocumentID]struct{})
	for _, term := range terms {
		for id := range e.corpus.Postings(term) {
			out[id] = struct{}{}
		}
	}
	return out
}

// intersect keeps only documents containing every term.
func (e *Engine) intersect(terms []string) map[sitesearch.DocumentID]struct{} {
	out := make(map[sitesearch.DocumentID]struct{})
	for id := range e.corpus.Postings(terms[0]) {
		out[id] = struct{}{}
	}
	for _, term := range terms[1:] {
		if len(out) == 0 {
			break
		}
		postings := e.corpus.Postings(term)
		for id := range out {
			if _, ok := postings[id]; !ok {
				delete(out, id)
			}
		}
	}
	return out
}
