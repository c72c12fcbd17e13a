package main

import (
	"fmt"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/fs"
	"github.com/fwojciec/sitesearch/sqlite"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	src := fs.NewSource(c.Dir)

	seeds, err := src.Seeds(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	if len(seeds) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no HTML files found in %q\n", c.Dir)
		return sitesearch.Errorf(sitesearch.ENOTFOUND, "no HTML files found in %q", c.Dir)
	}

	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
	}
	defer db.Close()

	store := sqlite.NewStore(db)
	for _, id := range seeds {
		html, err := src.Fetch(deps.Ctx, id)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
			return err
		}
		if err := store.CreatePage(deps.Ctx, id, html); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitesearch.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Imported %d pages into %s\n", len(seeds), c.DB)
	return nil
}
