package main_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/docsearch"
	main "github.com/fwojciec/docsearch/cmd/docsearch"
	"github.com/fwojciec/docsearch/crawl"
	"github.com/fwojciec/docsearch/goquery"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPage = `<html><body>
<input id="search-input"><div id="search-results"></div>
<script>window.DOCS_CONFIG = { assetsPath: "/docs/assets/" };</script>
</body></html>`

// newChecker returns a checker over pages keyed by URL. Unknown pages fail
// to fetch; indexes are served from indexes keyed by URL.
func newChecker(pages map[string]string, indexes map[string][]*docsearch.IndexEntry) *crawl.Checker {
	return &crawl.Checker{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				html, ok := pages[url]
				if !ok {
					return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "HTTP 404 for %s", url)
				}
				return html, nil
			},
		},
		Inspector: goquery.NewInspector(),
		IndexSource: func(indexURL string) docsearch.IndexSource {
			return &mock.IndexSource{
				LoadIndexFn: func(_ context.Context) ([]*docsearch.IndexEntry, error) {
					entries, ok := indexes[indexURL]
					if !ok {
						return nil, docsearch.Errorf(docsearch.EUNAVAILABLE, "HTTP 404 for %s", indexURL)
					}
					return entries, nil
				},
			}
		},
		Concurrency: 2,
		RetryDelays: []time.Duration{},
	}
}

func TestCheckCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("checks every page in the site index", func(t *testing.T) {
		t.Parallel()

		index := []*docsearch.IndexEntry{
			{Title: "Routing", URL: "/docs/routing"},
			{Title: "Routing again", URL: "routing"},
			{Title: "Install", URL: "/docs/install"},
		}

		var (
			mu        sync.Mutex
			requested []string
		)
		deps, stdout, stderr := newDeps()
		deps.RemoteIndex = func(indexURL string) docsearch.IndexSource {
			mu.Lock()
			requested = append(requested, indexURL)
			mu.Unlock()
			return staticIndex(index)
		}
		deps.Checker = newChecker(
			map[string]string{
				"https://example.com/docs/routing": searchPage,
				"https://example.com/docs/install": searchPage,
			},
			map[string][]*docsearch.IndexEntry{
				"https://example.com/docs/search-index.json": index,
			},
		)

		err := (&main.CheckCmd{URL: "https://example.com/docs", AssetsPath: "/docs/assets/"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs/search-index.json"}, requested)
		out := stdout.String()
		assert.Contains(t, out, "Checking 2 pages")
		assert.Contains(t, out, "ok   https://example.com/docs/routing (3 entries)")
		assert.Contains(t, out, "ok   https://example.com/docs/install (3 entries)")
		assert.Contains(t, out, "2 ok, 0 without search, 0 bad index, 0 failed (1 indexes)")
		assert.Empty(t, stderr.String())
	})

	t.Run("reports failing pages and returns error", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps()
		deps.Checker = newChecker(
			map[string]string{
				"https://example.com/a":     searchPage,
				"https://example.com/plain": "<html><body><p>no search</p></body></html>",
				"https://example.com/v2/a":  `<input id="search-input"><div id="search-results"></div>`,
			},
			map[string][]*docsearch.IndexEntry{
				"https://example.com/docs/search-index.json": {{Title: "A", URL: "/a"}},
			},
		)

		cmd := &main.CheckCmd{
			URL:   "https://example.com/",
			Pages: []string{"https://example.com/a", "https://example.com/plain", "https://example.com/v2/a", "https://example.com/gone"},
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, docsearch.EUNAVAILABLE, docsearch.ErrorCode(err))
		out := stdout.String()
		assert.Contains(t, out, "ok   https://example.com/a (1 entries)")
		assert.Contains(t, out, "none https://example.com/plain: no search markup")
		assert.Contains(t, out, "1 ok, 1 without search, 1 bad index, 1 failed (2 indexes)")
		errOut := stderr.String()
		assert.Contains(t, errOut, "bad  https://example.com/v2/a: HTTP 404 for https://example.com/v2/search-index.json")
		assert.Contains(t, errOut, "fail https://example.com/gone: HTTP 404")
		assert.Contains(t, errOut, "error: 3 of 4 pages failed the search check")
	})

	t.Run("applies concurrency flag", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		deps.Checker = newChecker(map[string]string{"https://example.com/a": searchPage},
			map[string][]*docsearch.IndexEntry{"https://example.com/docs/search-index.json": {{Title: "A"}}})

		cmd := &main.CheckCmd{URL: "https://example.com/", Pages: []string{"https://example.com/a"}, Concurrency: 7}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, 7, deps.Checker.Concurrency)
	})

	t.Run("returns error when site index is unavailable", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.RemoteIndex = func(_ string) docsearch.IndexSource {
			return &mock.IndexSource{
				LoadIndexFn: func(_ context.Context) ([]*docsearch.IndexEntry, error) {
					return nil, docsearch.Errorf(docsearch.EUNAVAILABLE, "HTTP 404 for index")
				},
			}
		}
		deps.Checker = newChecker(nil, nil)

		err := (&main.CheckCmd{URL: "https://example.com/"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: HTTP 404 for index")
	})
}
