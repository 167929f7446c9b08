package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

// Compile-time interface verification.
var (
	_ docsearch.SiteService  = (*SiteService)(nil)
	_ docsearch.EntryService = (*EntryService)(nil)
)

// SiteService is a mock implementation of docsearch.SiteService.
type SiteService struct {
	CreateSiteFn   func(ctx context.Context, site *docsearch.Site) error
	FindSiteByIDFn func(ctx context.Context, id string) (*docsearch.Site, error)
	FindSitesFn    func(ctx context.Context, filter docsearch.SiteFilter) ([]*docsearch.Site, error)
	DeleteSiteFn   func(ctx context.Context, id string) error
}

func (s *SiteService) CreateSite(ctx context.Context, site *docsearch.Site) error {
	return s.CreateSiteFn(ctx, site)
}

func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*docsearch.Site, error) {
	return s.FindSiteByIDFn(ctx, id)
}

func (s *SiteService) FindSites(ctx context.Context, filter docsearch.SiteFilter) ([]*docsearch.Site, error) {
	return s.FindSitesFn(ctx, filter)
}

func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	return s.DeleteSiteFn(ctx, id)
}

// EntryService is a mock implementation of docsearch.EntryService.
type EntryService struct {
	ReplaceEntriesFn func(ctx context.Context, siteID string, entries []*docsearch.IndexEntry) error
	FindEntriesFn    func(ctx context.Context, siteID string) ([]*docsearch.IndexEntry, error)
}

func (s *EntryService) ReplaceEntries(ctx context.Context, siteID string, entries []*docsearch.IndexEntry) error {
	return s.ReplaceEntriesFn(ctx, siteID, entries)
}

func (s *EntryService) FindEntries(ctx context.Context, siteID string) ([]*docsearch.IndexEntry, error) {
	return s.FindEntriesFn(ctx, siteID)
}
