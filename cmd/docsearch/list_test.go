package main_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docsearch"
	main "github.com/fwojciec/docsearch/cmd/docsearch"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists sites with ID, name, URL and entry count", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Sites = &mock.SiteService{
			FindSitesFn: func(_ context.Context, _ docsearch.SiteFilter) ([]*docsearch.Site, error) {
				return []*docsearch.Site{
					{ID: "site-1", Name: "guide", BaseURL: "https://example.com/guide/", EntryCount: 42},
					{ID: "site-2", Name: "api", BaseURL: "https://example.com/api/", EntryCount: 7},
				}, nil
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "site-1  guide  https://example.com/guide/  42 entries")
		assert.Contains(t, output, "site-2  api  https://example.com/api/  7 entries")
	})

	t.Run("shows helpful message when no sites exist", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Sites = &mock.SiteService{
			FindSitesFn: func(_ context.Context, _ docsearch.SiteFilter) ([]*docsearch.Site, error) {
				return []*docsearch.Site{}, nil
			},
		}

		require.NoError(t, (&main.ListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No sites")
	})

	t.Run("returns error when FindSites fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		deps, _, stderr := newDeps()
		deps.Sites = &mock.SiteService{
			FindSitesFn: func(_ context.Context, _ docsearch.SiteFilter) ([]*docsearch.Site, error) {
				return nil, dbErr
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
