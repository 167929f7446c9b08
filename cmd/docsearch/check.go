package main

import (
	"fmt"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/crawl"
)

// maxURLWidth bounds page URLs in progress lines.
const maxURLWidth = 72

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	root := siteRoot(c.URL)

	pages := c.Pages
	if len(pages) == 0 {
		var err error
		pages, err = indexedPages(deps, root, c.AssetsPath)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
			return err
		}
	}
	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages to check")
		return nil
	}

	if c.Concurrency > 0 {
		deps.Checker.Concurrency = c.Concurrency
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Checking %d pages\n", event.Total)
		case crawl.ProgressChecked:
			printReport(deps, event.Report)
		case crawl.ProgressFinished:
			// Summary printed after the check completes
		}
	}

	reports, err := deps.Checker.Check(deps.Ctx, pages, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error checking: %v\n", err)
		return err
	}

	s := crawl.Summarize(reports)
	fmt.Fprintf(deps.Stdout, "  %d ok, %d without search, %d bad index, %d failed (%d indexes)\n",
		s.OK, s.NoSearch, s.BadIndex, s.Failed, s.IndexURLs)

	if s.OK < len(reports) {
		err := docsearch.Errorf(docsearch.EUNAVAILABLE, "%d of %d pages failed the search check", len(reports)-s.OK, len(reports))
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}
	return nil
}

func printReport(deps *Dependencies, r *crawl.PageReport) {
	u := crawl.TruncateURL(r.URL, maxURLWidth)
	switch {
	case r.Err != nil:
		fmt.Fprintf(deps.Stderr, "  fail %s: %s\n", u, docsearch.ErrorMessage(r.Err))
	case !r.Info.SearchAvailable():
		fmt.Fprintf(deps.Stdout, "  none %s: no search markup\n", u)
	case r.IndexErr != nil:
		fmt.Fprintf(deps.Stderr, "  bad  %s: %s\n", u, docsearch.ErrorMessage(r.IndexErr))
	default:
		fmt.Fprintf(deps.Stdout, "  ok   %s (%d entries)\n", u, r.Entries)
	}
}

// indexedPages lists the absolute URL of every page in the site's index,
// in index order and without duplicates.
func indexedPages(deps *Dependencies, root, assetsPath string) ([]string, error) {
	indexURL, err := docsearch.ResolveURL(root, docsearch.IndexPath(assetsPath))
	if err != nil {
		return nil, err
	}

	entries, err := deps.RemoteIndex(indexURL).LoadIndex(deps.Ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(entries))
	var pages []string
	for _, e := range entries {
		if e == nil || e.URL == "" {
			continue
		}
		u, err := docsearch.ResolveURL(root, e.URL)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		pages = append(pages, u)
	}
	return pages, nil
}
