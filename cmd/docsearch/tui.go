package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/docsearch"
	dsslog "github.com/fwojciec/docsearch/slog"
	"github.com/fwojciec/docsearch/tui"
)

// Run executes the tui command.
func (c *TUICmd) Run(deps *Dependencies) error {
	if !tui.Interactive(deps.Stdin, deps.Stdout) {
		fmt.Fprintln(deps.Stderr, "error: tui requires a terminal. Use 'docsearch search' instead")
		return docsearch.Errorf(docsearch.EINVALID, "tui requires a terminal")
	}

	// Logs would corrupt the alternate screen, so they go to a file or nowhere.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: failed to open log file: %v\n", err)
			return err
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	deps.Logger = logger

	src, err := resolveSource(deps.Ctx, deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	store, loader := src.loader(deps)
	done := docsearch.LoadInBackground(deps.Ctx, loader, src)

	styles := tui.DefaultStyles()
	if tui.DetectNoColor() {
		styles = tui.NoColorStyles()
	}
	model := tui.New(dsslog.NewLoggingSearcher(store, logger),
		tui.WithStyles(styles),
		tui.WithBaseURL(src.BaseURL),
		tui.WithIndexLoad(done),
	)

	p := tea.NewProgram(model,
		tea.WithContext(deps.Ctx),
		tea.WithInput(deps.Stdin),
		tea.WithOutput(deps.Stdout),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if err := model.Err(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}
	if u := model.Navigated(); u != "" {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
