package main

import (
	"fmt"

	"github.com/fwojciec/sitesearch"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	s, err := newStack(&c.corpusFlags, deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	defer s.Close()

	_, corpus, err := s.crawlAndIndex(deps.Ctx, progressReporter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	results, err := s.engine(corpus, deps).Search(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, sitesearch.FormatResults(results))
	return nil
}
