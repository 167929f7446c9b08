package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/crawl"
	"github.com/fwojciec/docsearch/goquery"
	dshttp "github.com/fwojciec/docsearch/http"
	"github.com/fwojciec/docsearch/html"
	dsslog "github.com/fwojciec/docsearch/slog"
	"github.com/fwojciec/docsearch/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Stdin is the terminal input of the interactive panel.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SiteService  docsearch.SiteService
	EntryService docsearch.EntryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsearch"),
		kong.Description("Search the titles and headings of static documentation sites."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsearch --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.RemoteIndex = func(indexURL string) docsearch.IndexSource {
		return dshttp.NewIndexSource(indexURL)
	}
	deps.Renderer = html.NewRenderer()

	// Checking live pages needs no cache.
	if cmd != "check" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCSEARCH_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.SiteService = sqlite.NewSiteService(m.DB)
		m.EntryService = sqlite.NewEntryService(m.DB)
		deps.Sites = m.SiteService
		deps.Entries = m.EntryService
		deps.SiteIndex = func(siteID string) docsearch.IndexSource {
			return sqlite.NewIndexSource(m.DB, siteID)
		}
	}

	if cmd == "check" {
		c := cli.Check
		deps.RemoteIndex = func(indexURL string) docsearch.IndexSource {
			return dshttp.NewIndexSource(indexURL, dshttp.WithTimeout(c.Timeout))
		}
		deps.Checker = &crawl.Checker{
			Fetcher:     dsslog.NewLoggingFetcher(dshttp.NewFetcher(dshttp.WithTimeout(c.Timeout)), deps.Logger),
			Inspector:   dsslog.NewLoggingInspector(goquery.NewInspector(), deps.Logger),
			RateLimiter: crawl.NewDomainLimiter(c.RPS),
			IndexSource: func(indexURL string) docsearch.IndexSource {
				return dsslog.NewLoggingIndexSource(deps.RemoteIndex(indexURL), indexURL, deps.Logger)
			},
			Concurrency: c.Concurrency,
		}
		defer deps.Checker.Fetcher.Close()
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSEARCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docsearch.db"
	}
	dir := filepath.Join(home, ".docsearch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docsearch.db")
}
