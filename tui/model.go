// Package tui provides an interactive terminal search panel built on
// bubbletea. It drives docsearch.Controller from key and mouse input and
// applies the effects it returns to the terminal view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/docsearch"
)

// Layout rows. The result panel starts below the input and status lines and
// every result item occupies linesPerItem rows.
const (
	inputRow     = 0
	resultsTop   = 2
	linesPerItem = 2
)

// Placeholder is shown in the empty search input.
const Placeholder = "Search docs (Ctrl+K)"

// IndexLoadedMsg reports the completion of the background index load.
type IndexLoadedMsg struct {
	Err error
}

// WaitForIndex returns a command that delivers the result of a background
// load started with docsearch.Initialize.
func WaitForIndex(done <-chan error) tea.Cmd {
	return func() tea.Msg {
		return IndexLoadedMsg{Err: <-done}
	}
}

// Model is the bubbletea model of the search panel.
type Model struct {
	ctl     *docsearch.Controller
	input   textinput.Model
	styles  Styles
	baseURL string
	waitCmd tea.Cmd

	// A failed load is not shown; the panel behaves as an empty index.
	loading bool
	loadErr error

	// selectAll marks the input text as selected: the next edit replaces it.
	selectAll bool

	// height is the terminal height in rows, 0 until the first resize.
	// offset is the index of the first result drawn in the panel.
	height int
	offset int

	navigated string
	navErr    error
}

// Option configures a Model.
type Option func(*Model)

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithBaseURL sets the URL that result URLs are resolved against on
// activation.
func WithBaseURL(u string) Option {
	return func(m *Model) {
		m.baseURL = u
	}
}

// WithIndexLoad makes the model wait for a background index load, showing
// a loading status until it completes.
func WithIndexLoad(done <-chan error) Option {
	return func(m *Model) {
		m.loading = true
		m.waitCmd = WaitForIndex(done)
	}
}

// New returns a focused search panel backed by searcher.
func New(searcher docsearch.Searcher, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "/ "
	ti.Focus()

	m := &Model{
		ctl:    docsearch.NewController(searcher),
		input:  ti,
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Navigated returns the resolved URL of the activated result, or "" if the
// panel was closed without activating one.
func (m *Model) Navigated() string {
	return m.navigated
}

// Err returns the error that ended the session, if any.
func (m *Model) Err() error {
	return m.navErr
}

// State returns the interaction state.
func (m *Model) State() docsearch.State {
	return m.ctl.State()
}

// LoadErr returns the error of the background index load, if any.
func (m *Model) LoadErr() error {
	return m.loadErr
}

// Focused reports whether the search input has focus.
func (m *Model) Focused() bool {
	return m.input.Focused()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitCmd)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case IndexLoadedMsg:
		m.loading = false
		m.loadErr = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.offset = min(m.offset, max(0, m.ctl.State().ItemCount()-m.visibleItems()))
		m.scrollTo(m.ctl.State().Selected)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The focus shortcut wins over every other binding.
	switch msg.String() {
	case "ctrl+k":
		return m.dispatch(docsearch.FocusShortcutEvent{})
	case "ctrl+c":
		return m, tea.Quit
	}

	if !m.input.Focused() {
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "down":
		return m.dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowDown})
	case "up":
		return m.dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowUp})
	case "enter":
		return m.dispatch(docsearch.KeyEvent{Key: docsearch.KeyEnter})
	case "esc":
		return m.dispatch(docsearch.KeyEvent{Key: docsearch.KeyEscape})
	}

	if m.selectAll {
		m.selectAll = false
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			m.input.SetValue("")
		case tea.KeyBackspace, tea.KeyDelete:
			m.input.SetValue("")
			return m.dispatch(docsearch.InputEvent{Text: ""})
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	model, effCmd := m.dispatch(docsearch.InputEvent{Text: m.input.Value()})
	return model, tea.Batch(cmd, effCmd)
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	index, onItem := m.itemAt(msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if onItem {
			return m.dispatch(docsearch.HoverEvent{Index: index})
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case onItem:
			return m.dispatch(docsearch.ClickEvent{Index: index})
		case msg.Y == inputRow:
			m.selectAll = false
			return m, m.input.Focus()
		case !m.onPanel(msg.Y):
			return m.dispatch(docsearch.OutsideClickEvent{})
		}
	}
	return m, nil
}

// itemAt maps a screen row to the result item drawn there.
func (m *Model) itemAt(y int) (int, bool) {
	if y < resultsTop {
		return 0, false
	}
	start, end := m.window()
	index := start + (y-resultsTop)/linesPerItem
	if index >= end {
		return 0, false
	}
	return index, true
}

// onPanel reports whether row y lies inside the visible result panel.
func (m *Model) onPanel(y int) bool {
	state := m.ctl.State()
	if state.Phase != docsearch.PhaseShowing {
		return false
	}
	start, end := m.window()
	rows := max(1, (end-start)*linesPerItem)
	return y >= resultsTop && y < resultsTop+rows
}

// visibleItems is the number of result items that fit below the header
// rows. Every item fits while the terminal height is unknown.
func (m *Model) visibleItems() int {
	n := m.ctl.State().ItemCount()
	if m.height <= 0 {
		return max(1, n)
	}
	return max(1, (m.height-resultsTop)/linesPerItem)
}

// window returns the half-open range of result indices drawn in the panel.
func (m *Model) window() (start, end int) {
	n := m.ctl.State().ItemCount()
	start = min(m.offset, n)
	return start, min(n, start+m.visibleItems())
}

// scrollTo moves the window by the least amount that brings index into view.
func (m *Model) scrollTo(index int) {
	if index < 0 {
		return
	}
	visible := m.visibleItems()
	switch {
	case index < m.offset:
		m.offset = index
	case index >= m.offset+visible:
		m.offset = index - visible + 1
	}
}

// dispatch feeds ev to the controller and applies the resulting effects.
func (m *Model) dispatch(ev docsearch.Event) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, eff := range m.ctl.Dispatch(ev) {
		switch eff := eff.(type) {
		case docsearch.FocusEffect:
			cmds = append(cmds, m.input.Focus())
			m.selectAll = eff.SelectText && m.input.Value() != ""
			m.input.CursorEnd()
		case docsearch.BlurEffect:
			m.input.Blur()
			m.selectAll = false
		case docsearch.NavigateEffect:
			m.navigated, m.navErr = m.resolve(eff.URL)
			return m, tea.Quit
		case docsearch.SelectEffect:
			m.scrollTo(eff.Index)
		case docsearch.RenderEffect, docsearch.HideEffect:
			m.offset = 0
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) resolve(ref string) (string, error) {
	if m.baseURL == "" {
		return ref, nil
	}
	return docsearch.ResolveURL(m.baseURL, ref)
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	if m.selectAll {
		b.WriteString(m.input.Prompt + m.styles.SelectedAll.Render(m.input.Value()))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")

	state := m.ctl.State()
	if state.Phase != docsearch.PhaseShowing {
		return b.String()
	}
	if state.NoResults() {
		b.WriteString(m.styles.NoResults.Render("No results found"))
		b.WriteString("\n")
		return b.String()
	}

	start, end := m.window()
	for i := start; i < end; i++ {
		r := state.Results[i]
		marker := "  "
		if i == state.Selected {
			marker = m.styles.Selected.Render(">") + " "
		}
		b.WriteString(marker)
		for _, seg := range docsearch.Highlight(r.Entry.Title, state.Query) {
			if seg.Match {
				b.WriteString(m.styles.Match.Render(seg.Text))
			} else {
				b.WriteString(m.styles.Title.Render(seg.Text))
			}
		}
		b.WriteString("\n  ")
		b.WriteString(m.styles.Breadcrumbs.Render(docsearch.FormatBreadcrumbs(r.Entry) + docsearch.FormatMatchInfo(r)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) status() string {
	if m.loading {
		return m.styles.Status.Render("loading index...")
	}
	state := m.ctl.State()
	if state.Phase == docsearch.PhaseShowing {
		return m.styles.Status.Render(fmt.Sprintf("%d results  ↑/↓ select  enter open  esc close", len(state.Results)))
	}
	return m.styles.Status.Render("type at least 2 characters  ctrl+k focus  ctrl+c quit")
}
