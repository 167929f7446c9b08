package main

import (
	"context"
	"os"
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/fs"
	dsslog "github.com/fwojciec/docsearch/slog"
)

// indexSource is a resolved search source.
type indexSource struct {
	docsearch.IndexSource

	// Label names the index location in log records.
	Label string

	// BaseURL is the site root that entry URLs resolve against, or "" if
	// unknown.
	BaseURL string
}

// resolveSource maps a command-line source to an index. A source is an
// http(s) URL of an index document or a site root, a local index file or
// directory, or the name of a cached site.
func resolveSource(ctx context.Context, deps *Dependencies, source string) (*indexSource, error) {
	var (
		src   docsearch.IndexSource
		base  string
		label = source
	)

	switch {
	case isHTTPURL(source):
		indexURL := source
		base = source
		if !strings.HasSuffix(source, ".json") {
			base = siteRoot(source)
			u, err := docsearch.ResolveURL(base, docsearch.IndexPath(""))
			if err != nil {
				return nil, err
			}
			indexURL = u
		}
		src, label = deps.RemoteIndex(indexURL), indexURL

	case exists(source):
		f := fs.NewIndexFile(source)
		src, label = f, f.Path

	default:
		site, err := findSiteByName(ctx, deps.Sites, source)
		if err != nil {
			return nil, err
		}
		src, base = deps.SiteIndex(site.ID), site.BaseURL
	}

	return &indexSource{IndexSource: src, Label: label, BaseURL: base}, nil
}

// loader returns a store for src whose load is logged, including entries
// rejected by validation.
func (s *indexSource) loader(deps *Dependencies) (*docsearch.IndexStore, docsearch.IndexLoader) {
	store := docsearch.NewIndexStore()
	return store, dsslog.NewLoggingIndexLoader(store, s.Label, deps.Logger)
}

func findSiteByName(ctx context.Context, sites docsearch.SiteService, name string) (*docsearch.Site, error) {
	if sites == nil {
		return nil, docsearch.Errorf(docsearch.ENOTFOUND, "site %q not found", name)
	}
	found, err := sites.FindSites(ctx, docsearch.SiteFilter{Name: &name})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, docsearch.Errorf(docsearch.ENOTFOUND, "site %q not found. Use 'docsearch list' to see cached sites", name)
	}
	return found[0], nil
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// siteRoot returns u with a trailing slash so relative index paths resolve
// inside it.
func siteRoot(u string) string {
	if strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
