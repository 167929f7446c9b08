package docsearch

import (
	"strings"
	"unicode/utf8"
)

// Phase is the visibility state of the result panel.
type Phase int

// Panel phases.
const (
	// PhaseIdle means the panel is hidden and nothing is selected.
	PhaseIdle Phase = iota

	// PhaseShowing means the panel is visible with zero or more results.
	// Zero results is the "no results" state, distinct from Idle.
	PhaseShowing
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseShowing:
		return "showing"
	default:
		return "unknown"
	}
}

// NoSelection is the cursor value when no result is selected.
const NoSelection = -1

// State is the interaction state of the search panel.
type State struct {
	Phase   Phase
	Query   string
	Results []SearchResult

	// Selected is the keyboard cursor, in [NoSelection, len(Results)-1].
	Selected int
}

// NewState returns the initial Idle state.
func NewState() State {
	return State{Phase: PhaseIdle, Selected: NoSelection}
}

// ItemCount returns the number of rendered result items.
func (s State) ItemCount() int {
	if s.Phase != PhaseShowing {
		return 0
	}
	return len(s.Results)
}

// NoResults reports whether the panel is showing the "no results" placeholder.
func (s State) NoResults() bool {
	return s.Phase == PhaseShowing && len(s.Results) == 0
}

// SelectedResult returns the result under the cursor, if any.
func (s State) SelectedResult() (SearchResult, bool) {
	if s.Phase != PhaseShowing || s.Selected < 0 || s.Selected >= len(s.Results) {
		return SearchResult{}, false
	}
	return s.Results[s.Selected], true
}

// Key identifies a navigation key handled by the search input.
type Key string

// Keys handled while the search input has focus.
const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
)

// Event is an input to the interaction state machine.
type Event interface {
	event()
}

// InputEvent reports the current text of the search input.
type InputEvent struct {
	Text string
}

// KeyEvent reports a navigation key pressed in the search input.
type KeyEvent struct {
	Key Key
}

// HoverEvent reports the pointer entering the result item at Index.
type HoverEvent struct {
	Index int
}

// ClickEvent reports a click on the result item at Index.
type ClickEvent struct {
	Index int
}

// OutsideClickEvent reports a click outside both the input and the panel.
type OutsideClickEvent struct{}

// FocusShortcutEvent reports the global "focus search" shortcut (Ctrl/Cmd+K).
type FocusShortcutEvent struct{}

func (InputEvent) event()         {}
func (KeyEvent) event()           {}
func (HoverEvent) event()         {}
func (ClickEvent) event()         {}
func (OutsideClickEvent) event()  {}
func (FocusShortcutEvent) event() {}

// Effect is a side effect requested by the state machine. Adapters apply
// effects to the real UI in the order returned.
type Effect interface {
	effect()
}

// RenderEffect replaces the whole result list. An empty Results renders the
// "no results" placeholder.
type RenderEffect struct {
	Results []SearchResult
	Query   string
}

// HideEffect hides the result panel.
type HideEffect struct{}

// SelectEffect moves the visual selection to Index and scrolls it into the
// nearest visible position within the panel. NoSelection clears it.
type SelectEffect struct {
	Index int
}

// NavigateEffect activates a result: a full navigation to URL.
type NavigateEffect struct {
	URL string
}

// BlurEffect removes focus from the search input.
type BlurEffect struct{}

// FocusEffect focuses the search input, selecting its text if SelectText.
type FocusEffect struct {
	SelectText bool
}

func (RenderEffect) effect()   {}
func (HideEffect) effect()     {}
func (SelectEffect) effect()   {}
func (NavigateEffect) effect() {}
func (BlurEffect) effect()     {}
func (FocusEffect) effect()    {}

// HandleEvent applies ev to state and returns the new state with the
// effects to perform. It does not mutate state. searcher is consulted only
// for InputEvents long enough to search.
func HandleEvent(state State, ev Event, searcher Searcher) (State, []Effect) {
	switch ev := ev.(type) {
	case FocusShortcutEvent:
		return state, []Effect{FocusEffect{SelectText: true}}

	case InputEvent:
		query := strings.TrimSpace(ev.Text)
		if utf8.RuneCountInString(query) < MinQueryLength {
			state.Query = query
			return hide(state), []Effect{HideEffect{}}
		}
		var results []SearchResult
		if searcher != nil {
			results = searcher.Search(query)
		}
		next := State{
			Phase:    PhaseShowing,
			Query:    query,
			Results:  results,
			Selected: NoSelection,
		}
		return next, []Effect{RenderEffect{Results: results, Query: query}}

	case KeyEvent:
		return handleKey(state, ev.Key)

	case HoverEvent:
		if state.Phase != PhaseShowing || ev.Index < 0 || ev.Index >= len(state.Results) {
			return state, nil
		}
		state.Selected = ev.Index
		return state, []Effect{SelectEffect{Index: ev.Index}}

	case ClickEvent:
		if state.Phase != PhaseShowing || ev.Index < 0 || ev.Index >= len(state.Results) {
			return state, nil
		}
		return state, []Effect{NavigateEffect{URL: state.Results[ev.Index].Entry.URL}}

	case OutsideClickEvent:
		return hide(state), []Effect{HideEffect{}}
	}

	return state, nil
}

func handleKey(state State, key Key) (State, []Effect) {
	if key == KeyEscape {
		return hide(state), []Effect{HideEffect{}, BlurEffect{}}
	}
	if state.Phase != PhaseShowing {
		return state, nil
	}

	n := len(state.Results)
	switch key {
	case KeyArrowDown:
		state.Selected = min(state.Selected+1, n-1)
		return state, []Effect{SelectEffect{Index: state.Selected}}
	case KeyArrowUp:
		state.Selected = max(state.Selected-1, NoSelection)
		return state, []Effect{SelectEffect{Index: state.Selected}}
	case KeyEnter:
		if r, ok := state.SelectedResult(); ok {
			return state, []Effect{NavigateEffect{URL: r.Entry.URL}}
		}
	}
	return state, nil
}

// hide returns the Idle state, keeping the query text.
func hide(state State) State {
	return State{Phase: PhaseIdle, Query: state.Query, Selected: NoSelection}
}

// Controller owns the interaction state and feeds events through
// HandleEvent. It is not safe for concurrent use; drive it from a single
// event loop.
type Controller struct {
	searcher Searcher
	state    State
}

// NewController returns a Controller in the Idle state.
func NewController(searcher Searcher) *Controller {
	return &Controller{searcher: searcher, state: NewState()}
}

// Dispatch applies ev and returns the effects to perform.
func (c *Controller) Dispatch(ev Event) []Effect {
	var effects []Effect
	c.state, effects = HandleEvent(c.state, ev, c.searcher)
	return effects
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}
