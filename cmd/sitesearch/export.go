package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/fs"
	"github.com/fwojciec/sitesearch/htmltomarkdown"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	s, err := newStack(&c.corpusFlags, deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	defer s.Close()

	result, _, err := s.crawlAndIndex(deps.Ctx, progressReporter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	out := filepath.Clean(c.Out)
	writer := fs.NewWriter(filepath.Dir(out), filepath.Base(out))
	converter := htmltomarkdown.NewConverter()

	for _, doc := range result.Documents {
		html, err := s.fetcher.Fetch(deps.Ctx, doc.ID)
		if err != nil {
			_ = writer.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
			return err
		}

		markdown, err := converter.Convert(html)
		if err != nil {
			_ = writer.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
			return err
		}

		if err := writer.CreateDocument(deps.Ctx, doc, markdown); err != nil {
			_ = writer.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
			return err
		}
	}

	if err := writer.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d documents to %s\n", len(result.Documents), out)
	return nil
}
