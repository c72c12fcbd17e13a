package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/sqlite"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
	}
	defer db.Close()

	records, err := sqlite.NewHistoryService(db).FindCrawls(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawls recorded. Use 'sitesearch crawl --db' to record one.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  documents=%d failed=%d terms=%d duration=%s\n",
			r.StartedAt.Format("2006-01-02 15:04:05"), r.ID, r.Root,
			r.Documents, r.Failed, r.Terms, r.Duration.Round(time.Millisecond))
	}

	return nil
}
