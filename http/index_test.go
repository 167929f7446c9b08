package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/docsearch"
	dshttp "github.com/fwojciec/docsearch/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexSource_LoadIndex(t *testing.T) {
	t.Parallel()

	t.Run("decodes index document", func(t *testing.T) {
		t.Parallel()

		var path string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"title":"Getting Started","headings":["Installation","Quickstart"],"breadcrumbs":["Docs"],"url":"/start"},
				{"title":"Advanced Config","headings":[],"breadcrumbs":[],"url":"/adv"}
			]`))
		}))
		defer server.Close()

		src := dshttp.NewIndexSource(server.URL + "/docs/search-index.json")

		entries, err := src.LoadIndex(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "/docs/search-index.json", path)
		require.Len(t, entries, 2)
		assert.Equal(t, &docsearch.IndexEntry{
			Title:       "Getting Started",
			Headings:    []string{"Installation", "Quickstart"},
			Breadcrumbs: []string{"Docs"},
			URL:         "/start",
		}, entries[0])
		assert.Equal(t, "/adv", entries[1].URL)
	})

	t.Run("accepts index served with non-authoritative status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNonAuthoritativeInfo)
			_, _ = w.Write([]byte(`[{"title":"Routing","url":"/routing"}]`))
		}))
		defer server.Close()

		src := dshttp.NewIndexSource(server.URL + "/search-index.json")

		entries, err := src.LoadIndex(context.Background())

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Routing", entries[0].Title)
	})

	t.Run("returns EUNAVAILABLE for missing index", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		src := dshttp.NewIndexSource(server.URL + "/search-index.json")

		_, err := src.LoadIndex(context.Background())

		require.Error(t, err)
		assert.Equal(t, docsearch.EUNAVAILABLE, docsearch.ErrorCode(err))
	})

	t.Run("returns EUNAVAILABLE for unreachable host", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL + "/search-index.json"
		server.Close()

		_, err := dshttp.NewIndexSource(url).LoadIndex(context.Background())

		require.Error(t, err)
		assert.Equal(t, docsearch.EUNAVAILABLE, docsearch.ErrorCode(err))
	})

	t.Run("returns EINVALID for malformed document", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"title":"not an array"}`))
		}))
		defer server.Close()

		_, err := dshttp.NewIndexSource(server.URL).LoadIndex(context.Background())

		require.Error(t, err)
		assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(err))
	})

	t.Run("feeds index store", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"title":"Routing","headings":["Routes"],"breadcrumbs":[],"url":"/r"}]`))
		}))
		defer server.Close()

		store, done := docsearch.Initialize(context.Background(), dshttp.NewIndexSource(server.URL))

		require.NoError(t, <-done)
		results := store.Search("rout")
		require.Len(t, results, 1)
		assert.Equal(t, 135, results[0].Score)
	})
}
