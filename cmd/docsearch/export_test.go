package main_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docsearch"
	main "github.com/fwojciec/docsearch/cmd/docsearch"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes cached entries into directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		deps, stdout, _ := newDeps()
		deps.Sites = &mock.SiteService{
			FindSitesFn: func(_ context.Context, _ docsearch.SiteFilter) ([]*docsearch.Site, error) {
				return []*docsearch.Site{{ID: "site-1", Name: "guide"}}, nil
			},
		}
		deps.Entries = &mock.EntryService{
			FindEntriesFn: func(_ context.Context, siteID string) ([]*docsearch.IndexEntry, error) {
				assert.Equal(t, "site-1", siteID)
				return testEntries(), nil
			},
		}

		err := (&main.ExportCmd{Name: "guide", Path: dir}).Run(deps)

		require.NoError(t, err)
		path := filepath.Join(dir, docsearch.IndexFilename)
		assert.Contains(t, stdout.String(), "Exported 3 entries to "+path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var got []*docsearch.IndexEntry
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, testEntries(), got)
	})

	t.Run("returns not found for unknown site", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Sites = &mock.SiteService{
			FindSitesFn: func(_ context.Context, _ docsearch.SiteFilter) ([]*docsearch.Site, error) {
				return nil, nil
			},
		}

		err := (&main.ExportCmd{Name: "missing", Path: t.TempDir()}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
