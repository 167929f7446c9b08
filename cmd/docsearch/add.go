package main

import (
	"fmt"

	"github.com/fwojciec/docsearch"
	dsslog "github.com/fwojciec/docsearch/slog"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	site := &docsearch.Site{
		Name:       c.Name,
		BaseURL:    siteRoot(c.URL),
		AssetsPath: c.AssetsPath,
	}
	if err := site.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	indexURL, err := site.IndexURL()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	// Fetch before touching the cache so a bad index leaves it unchanged.
	src := dsslog.NewLoggingIndexSource(deps.RemoteIndex(indexURL), indexURL, deps.Logger)
	entries, err := src.LoadIndex(deps.Ctx)
	if err == nil {
		err = docsearch.ValidateEntries(entries)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	var previous *docsearch.Site
	if c.Force {
		existing, err := deps.Sites.FindSites(deps.Ctx, docsearch.SiteFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			previous = existing[0]
			if err := deps.Sites.DeleteSite(deps.Ctx, previous.ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
				return err
			}
		}
	}

	if err := deps.Sites.CreateSite(deps.Ctx, site); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}
	if err := deps.Entries.ReplaceEntries(deps.Ctx, site.ID, entries); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	// Re-read for the hash and count computed by the store.
	stored, err := deps.Sites.FindSiteByID(deps.Ctx, site.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added site %q (%s)\n", stored.Name, stored.ID)
	fmt.Fprintf(deps.Stdout, "  Index %s\n", indexURL)
	fmt.Fprintf(deps.Stdout, "  Cached %d entries (hash %s)\n", stored.EntryCount, stored.IndexHash)

	if previous != nil {
		if previous.IndexHash == stored.IndexHash {
			fmt.Fprintln(deps.Stdout, "  Index unchanged")
		} else {
			fmt.Fprintf(deps.Stdout, "  Index changed (was %d entries, hash %s)\n", previous.EntryCount, previous.IndexHash)
		}
	}

	return nil
}
