package docsearch_test

import (
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeResults returns a searcher that always yields three results.
func threeResults() docsearch.Searcher {
	return docsearch.SearcherFunc(func(query string) []docsearch.SearchResult {
		return []docsearch.SearchResult{
			{Entry: &docsearch.IndexEntry{Title: "One", URL: "/one"}, Score: 100},
			{Entry: &docsearch.IndexEntry{Title: "Two", URL: "/two"}, Score: 100},
			{Entry: &docsearch.IndexEntry{Title: "Three", URL: "/three"}, Score: 100},
		}
	})
}

// noSearch fails the test if the controller searches.
func noSearch(t *testing.T) docsearch.Searcher {
	t.Helper()
	return &mock.Searcher{
		SearchFn: func(query string) []docsearch.SearchResult {
			t.Errorf("unexpected search for %q", query)
			return nil
		},
	}
}

func showing(t *testing.T, c *docsearch.Controller) {
	t.Helper()
	c.Dispatch(docsearch.InputEvent{Text: "term"})
	require.Equal(t, docsearch.PhaseShowing, c.State().Phase)
}

func TestHandleEvent_Input(t *testing.T) {
	t.Parallel()

	t.Run("searches and shows results", func(t *testing.T) {
		t.Parallel()

		var got string
		searcher := &mock.Searcher{
			SearchFn: func(query string) []docsearch.SearchResult {
				got = query
				return docsearch.Match(query, sampleIndex())
			},
		}

		state, effects := docsearch.HandleEvent(docsearch.NewState(), docsearch.InputEvent{Text: "getting started"}, searcher)

		assert.Equal(t, "getting started", got)
		assert.Equal(t, docsearch.PhaseShowing, state.Phase)
		assert.Equal(t, docsearch.NoSelection, state.Selected)
		require.Len(t, state.Results, 2)
		require.Len(t, effects, 1)
		render, ok := effects[0].(docsearch.RenderEffect)
		require.True(t, ok)
		assert.Equal(t, "getting started", render.Query)
		assert.Equal(t, state.Results, render.Results)
	})

	t.Run("short input hides without searching", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{"", "a", " a ", "é"} {
			state, effects := docsearch.HandleEvent(docsearch.NewState(), docsearch.InputEvent{Text: text}, noSearch(t))

			assert.Equal(t, docsearch.PhaseIdle, state.Phase, text)
			assert.Equal(t, []docsearch.Effect{docsearch.HideEffect{}}, effects, text)
		}
	})

	t.Run("shortening input hides visible panel", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		showing(t, c)
		c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowDown})

		effects := c.Dispatch(docsearch.InputEvent{Text: "t"})

		assert.Equal(t, []docsearch.Effect{docsearch.HideEffect{}}, effects)
		assert.Equal(t, docsearch.PhaseIdle, c.State().Phase)
		assert.Equal(t, docsearch.NoSelection, c.State().Selected)
		assert.Empty(t, c.State().Results)
	})

	t.Run("unmatched query shows no results placeholder", func(t *testing.T) {
		t.Parallel()

		searcher := docsearch.SearcherFunc(func(query string) []docsearch.SearchResult {
			return docsearch.Match(query, sampleIndex())
		})

		state, effects := docsearch.HandleEvent(docsearch.NewState(), docsearch.InputEvent{Text: "zz"}, searcher)

		assert.Equal(t, docsearch.PhaseShowing, state.Phase)
		assert.True(t, state.NoResults())
		assert.Zero(t, state.ItemCount())
		require.Len(t, effects, 1)
		assert.Empty(t, effects[0].(docsearch.RenderEffect).Results)
	})

	t.Run("new results reset selection", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		showing(t, c)
		c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowDown})
		c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowDown})
		require.Equal(t, 1, c.State().Selected)

		c.Dispatch(docsearch.InputEvent{Text: "terms"})

		assert.Equal(t, docsearch.NoSelection, c.State().Selected)
	})

	t.Run("searches nothing without searcher", func(t *testing.T) {
		t.Parallel()

		state, _ := docsearch.HandleEvent(docsearch.NewState(), docsearch.InputEvent{Text: "query"}, nil)

		assert.True(t, state.NoResults())
	})
}

func TestHandleEvent_Keys(t *testing.T) {
	t.Parallel()

	t.Run("arrow down clamps at last item", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		showing(t, c)

		var selections []int
		for range 5 {
			effects := c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowDown})
			require.Len(t, effects, 1)
			selections = append(selections, effects[0].(docsearch.SelectEffect).Index)
		}

		assert.Equal(t, []int{0, 1, 2, 2, 2}, selections)
		assert.Equal(t, 2, c.State().Selected)
	})

	t.Run("arrow up clamps at no selection", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		showing(t, c)
		c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowDown})

		c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowUp})
		assert.Equal(t, docsearch.NoSelection, c.State().Selected)

		effects := c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowUp})
		assert.Equal(t, docsearch.NoSelection, c.State().Selected)
		assert.Equal(t, []docsearch.Effect{docsearch.SelectEffect{Index: docsearch.NoSelection}}, effects)
	})

	t.Run("arrow down with no results keeps no selection", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(docsearch.SearcherFunc(func(string) []docsearch.SearchResult { return nil }))
		showing(t, c)

		c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowDown})

		assert.Equal(t, docsearch.NoSelection, c.State().Selected)
	})

	t.Run("enter navigates to selected result", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		showing(t, c)
		c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowDown})
		c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowDown})

		effects := c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyEnter})

		assert.Equal(t, []docsearch.Effect{docsearch.NavigateEffect{URL: "/two"}}, effects)
	})

	t.Run("enter without selection does nothing", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		showing(t, c)

		effects := c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyEnter})

		assert.Empty(t, effects)
		assert.Equal(t, docsearch.PhaseShowing, c.State().Phase)
	})

	t.Run("navigation keys are ignored while idle", func(t *testing.T) {
		t.Parallel()

		for _, key := range []docsearch.Key{docsearch.KeyArrowDown, docsearch.KeyArrowUp, docsearch.KeyEnter} {
			state, effects := docsearch.HandleEvent(docsearch.NewState(), docsearch.KeyEvent{Key: key}, noSearch(t))

			assert.Equal(t, docsearch.NewState(), state, key)
			assert.Empty(t, effects, key)
		}
	})

	t.Run("escape hides and blurs", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		showing(t, c)
		c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowDown})

		effects := c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyEscape})

		assert.Equal(t, []docsearch.Effect{docsearch.HideEffect{}, docsearch.BlurEffect{}}, effects)
		assert.Equal(t, docsearch.PhaseIdle, c.State().Phase)
		assert.Equal(t, docsearch.NoSelection, c.State().Selected)
		assert.Equal(t, "term", c.State().Query)
	})

	t.Run("escape while idle still blurs", func(t *testing.T) {
		t.Parallel()

		_, effects := docsearch.HandleEvent(docsearch.NewState(), docsearch.KeyEvent{Key: docsearch.KeyEscape}, nil)

		assert.Contains(t, effects, docsearch.Effect(docsearch.BlurEffect{}))
	})
}

func TestHandleEvent_Pointer(t *testing.T) {
	t.Parallel()

	t.Run("hover moves selection", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		showing(t, c)

		effects := c.Dispatch(docsearch.HoverEvent{Index: 2})

		assert.Equal(t, []docsearch.Effect{docsearch.SelectEffect{Index: 2}}, effects)
		assert.Equal(t, 2, c.State().Selected)
	})

	t.Run("keyboard after hover continues from hovered item", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		showing(t, c)
		c.Dispatch(docsearch.HoverEvent{Index: 1})

		c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowUp})

		assert.Equal(t, 0, c.State().Selected)
	})

	t.Run("hover out of range is ignored", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		showing(t, c)

		assert.Empty(t, c.Dispatch(docsearch.HoverEvent{Index: 3}))
		assert.Empty(t, c.Dispatch(docsearch.HoverEvent{Index: -1}))
		assert.Equal(t, docsearch.NoSelection, c.State().Selected)
	})

	t.Run("click navigates", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		showing(t, c)

		effects := c.Dispatch(docsearch.ClickEvent{Index: 0})

		assert.Equal(t, []docsearch.Effect{docsearch.NavigateEffect{URL: "/one"}}, effects)
	})

	t.Run("click while idle is ignored", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())

		assert.Empty(t, c.Dispatch(docsearch.ClickEvent{Index: 0}))
	})

	t.Run("outside click hides", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		showing(t, c)

		effects := c.Dispatch(docsearch.OutsideClickEvent{})

		assert.Equal(t, []docsearch.Effect{docsearch.HideEffect{}}, effects)
		assert.Equal(t, docsearch.PhaseIdle, c.State().Phase)
		assert.Zero(t, c.State().ItemCount())
	})
}

func TestHandleEvent_FocusShortcut(t *testing.T) {
	t.Parallel()

	t.Run("focuses and selects input from any state", func(t *testing.T) {
		t.Parallel()

		c := docsearch.NewController(threeResults())
		effects := c.Dispatch(docsearch.FocusShortcutEvent{})
		assert.Equal(t, []docsearch.Effect{docsearch.FocusEffect{SelectText: true}}, effects)

		showing(t, c)
		c.Dispatch(docsearch.KeyEvent{Key: docsearch.KeyArrowDown})
		before := c.State()

		effects = c.Dispatch(docsearch.FocusShortcutEvent{})

		assert.Equal(t, []docsearch.Effect{docsearch.FocusEffect{SelectText: true}}, effects)
		assert.Equal(t, before, c.State())
	})
}

func TestHandleEvent_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	state, _ := docsearch.HandleEvent(docsearch.NewState(), docsearch.InputEvent{Text: "term"}, threeResults())
	snapshot := state.Selected

	next, _ := docsearch.HandleEvent(state, docsearch.KeyEvent{Key: docsearch.KeyArrowDown}, nil)

	assert.Equal(t, snapshot, state.Selected)
	assert.Equal(t, 0, next.Selected)
}

func TestPhase_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", docsearch.PhaseIdle.String())
	assert.Equal(t, "showing", docsearch.PhaseShowing.String())
}
