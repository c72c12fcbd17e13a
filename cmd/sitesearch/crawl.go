package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/sqlite"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	s, err := newStack(&c.corpusFlags, deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	defer s.Close()

	start := time.Now()
	result, corpus, err := s.crawlAndIndex(deps.Ctx, progressReporter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	duration := time.Since(start)

	fmt.Fprintf(deps.Stdout, "Crawled %s\n", s.root)
	fmt.Fprintf(deps.Stdout, "  documents: %d\n", len(result.Documents))
	fmt.Fprintf(deps.Stdout, "  failed: %d\n", len(result.Failed))
	fmt.Fprintf(deps.Stdout, "  terms: %d\n", corpus.Terms())
	fmt.Fprintf(deps.Stdout, "  edges: %d\n", result.Graph.Edges())
	fmt.Fprintf(deps.Stdout, "  duration: %s\n", duration.Round(time.Millisecond))

	// Crawls over an archive are recorded in its history table.
	if s.db != nil {
		rec := &sitesearch.CrawlRecord{
			ID:        result.RunID,
			Root:      s.root,
			StartedAt: start,
			Duration:  duration,
			Documents: len(result.Documents),
			Failed:    len(result.Failed),
			Terms:     corpus.Terms(),
		}
		if err := sqlite.NewHistoryService(s.db).RecordCrawl(deps.Ctx, rec); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
			return err
		}
	}

	return nil
}
