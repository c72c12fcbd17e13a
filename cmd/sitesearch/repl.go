package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/sitesearch"
)

// Run executes the repl command.
func (c *ReplCmd) Run(deps *Dependencies) error {
	s, err := newStack(&c.corpusFlags, deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	defer s.Close()

	result, corpus, err := s.crawlAndIndex(deps.Ctx, progressReporter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	searcher := s.engine(corpus, deps)

	fmt.Fprintf(deps.Stdout, "Indexed %d documents (%d terms). Type a query, or 'quit' to exit.\n",
		len(result.Documents), corpus.Terms())

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "search> ")
		if !scanner.Scan() {
			break
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "quit" || query == "exit" {
			break
		}

		results, err := searcher.Search(deps.Ctx, query)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
			continue
		}
		fmt.Fprintln(deps.Stdout, sitesearch.FormatResults(results))
	}

	return scanner.Err()
}
