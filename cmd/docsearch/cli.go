package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Sites    docsearch.SiteService
	Entries  docsearch.EntryService
	Renderer docsearch.ResultRenderer
	Checker  *crawl.Checker

	// SiteIndex returns the cached index of a registered site.
	SiteIndex func(siteID string) docsearch.IndexSource

	// RemoteIndex returns the source for an absolute index URL.
	RemoteIndex func(indexURL string) docsearch.IndexSource
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Add    AddCmd    `cmd:"" help:"Fetch a site's search index and cache it"`
	List   ListCmd   `cmd:"" help:"List cached sites"`
	Delete DeleteCmd `cmd:"" help:"Delete a cached site and its index"`
	Search SearchCmd `cmd:"" help:"Search an index from the command line"`
	TUI    TUICmd    `cmd:"" name:"tui" help:"Search an index interactively"`
	Check  CheckCmd  `cmd:"" help:"Check that a site's pages carry working search"`
	Export ExportCmd `cmd:"" help:"Write a cached index as a search-index.json document"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name       string `arg:"" help:"Site name"`
	URL        string `arg:"" name:"site-url" help:"Documentation site root URL"`
	AssetsPath string `name:"assets-path" short:"a" help:"Assets path configured on the site (locates the index)"`
	Force      bool   `short:"f" help:"Replace an existing site of the same name"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Site name"`
	Force bool   `help:"Confirm deletion"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Source string `arg:"" help:"Site name, index or site URL, or local index file or directory"`
	Query  string `arg:"" help:"Search query"`
	HTML   bool   `name:"html" help:"Print the result list markup"`
	Limit  int    `short:"n" help:"Show at most this many results (0 for all)"`
}

// TUICmd is the "tui" subcommand.
type TUICmd struct {
	Source  string `arg:"" help:"Site name, index or site URL, or local index file or directory"`
	LogFile string `name:"log-file" help:"Write logs to this file"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	URL         string        `arg:"" name:"site-url" help:"Documentation site root URL"`
	Pages       []string      `arg:"" optional:"" name:"page-url" help:"Pages to check (default: every page in the index)"`
	AssetsPath  string        `name:"assets-path" short:"a" help:"Assets path configured on the site (locates the index)"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent page checks"`
	RPS         float64       `name:"rps" default:"1" help:"Page requests per second per host (0 disables pacing)"`
	Timeout     time.Duration `default:"30s" help:"Timeout per request"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Site name"`
	Path string `arg:"" help:"Output file or directory"`
}
