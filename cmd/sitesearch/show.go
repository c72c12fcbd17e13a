package main

import (
	"fmt"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/htmltomarkdown"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	s, err := newStack(&c.corpusFlags, deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	defer s.Close()

	html, err := s.fetcher.Fetch(deps.Ctx, sitesearch.DocumentID(c.ID))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	markdown, err := htmltomarkdown.NewConverter().Convert(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
