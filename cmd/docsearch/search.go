package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/docsearch"
	dsslog "github.com/fwojciec/docsearch/slog"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	src, err := resolveSource(deps.Ctx, deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	// A failed load is logged at error level and leaves the index empty.
	store, loader := src.loader(deps)
	if err := loader.Load(deps.Ctx, src); err != nil {
		deps.Logger.Debug("searching empty index", "source", src.Label)
	}

	ctl := docsearch.NewController(dsslog.NewLoggingSearcher(store, deps.Logger))
	ctl.Dispatch(docsearch.InputEvent{Text: c.Query})
	state := ctl.State()
	if state.Phase != docsearch.PhaseShowing {
		return nil
	}

	results := state.Results
	if c.Limit > 0 && len(results) > c.Limit {
		results = results[:c.Limit]
	}

	if c.HTML {
		out, err := deps.Renderer.Render(results, state.Query)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, out)
		return nil
	}

	printResults(deps.Stdout, results, src.BaseURL)
	return nil
}

func printResults(w io.Writer, results []docsearch.SearchResult, baseURL string) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found")
		return
	}

	for i, r := range results {
		target := r.Entry.URL
		if baseURL != "" {
			if u, err := docsearch.ResolveURL(baseURL, target); err == nil {
				target = u
			}
		}

		fmt.Fprintf(w, "%2d. %s  [%d]\n", i+1, r.Entry.Title, r.Score)
		if crumbs := docsearch.FormatBreadcrumbs(r.Entry) + docsearch.FormatMatchInfo(r); crumbs != "" {
			fmt.Fprintf(w, "    %s\n", crumbs)
		}
		fmt.Fprintf(w, "    %s\n", target)
	}
}
