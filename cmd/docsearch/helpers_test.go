package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/docsearch"
	main "github.com/fwojciec/docsearch/cmd/docsearch"
	"github.com/fwojciec/docsearch/html"
	"github.com/fwojciec/docsearch/mock"
)

func testEntries() []*docsearch.IndexEntry {
	return []*docsearch.IndexEntry{
		{Title: "Routing", Headings: []string{"Routes", "Route params"}, Breadcrumbs: []string{"Guide"}, URL: "/guide/routing"},
		{Title: "Middleware", Headings: []string{"Routing middleware"}, Breadcrumbs: []string{"Guide", "Advanced"}, URL: "/guide/middleware"},
		{Title: "Install", Headings: []string{"Requirements"}, Breadcrumbs: []string{"Start"}, URL: "install.html"},
	}
}

// newDeps returns dependencies writing to buffers, with no services set.
func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdin:    strings.NewReader(""),
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Renderer: html.NewRenderer(),
	}, stdout, stderr
}

// staticIndex returns a source that serves entries.
func staticIndex(entries []*docsearch.IndexEntry) *mock.IndexSource {
	return &mock.IndexSource{
		LoadIndexFn: func(_ context.Context) ([]*docsearch.IndexEntry, error) {
			return entries, nil
		},
	}
}
