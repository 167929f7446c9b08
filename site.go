package docsearch

import (
	"context"
	"time"
)

// Site represents a documentation site whose search index is cached locally.
type Site struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// BaseURL is the site root that entry URLs are resolved against.
	BaseURL string `json:"baseUrl"`

	// AssetsPath is the configured assets path used to locate the index.
	AssetsPath string `json:"assetsPath"`

	// IndexHash identifies the cached index contents.
	IndexHash  string `json:"indexHash"`
	EntryCount int    `json:"entryCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.BaseURL == "" {
		return Errorf(EINVALID, "site base URL required")
	}
	return nil
}

// IndexURL returns the absolute location of the site's search index.
func (s *Site) IndexURL() (string, error) {
	return ResolveURL(s.BaseURL, IndexPath(s.AssetsPath))
}

// SiteService represents a service for managing cached sites.
type SiteService interface {
	// CreateSite creates a new site.
	CreateSite(ctx context.Context, site *Site) error

	// FindSiteByID retrieves a site by ID.
	// Returns ENOTFOUND if the site does not exist.
	FindSiteByID(ctx context.Context, id string) (*Site, error)

	// FindSites retrieves sites matching the filter.
	FindSites(ctx context.Context, filter SiteFilter) ([]*Site, error)

	// DeleteSite permanently removes a site and its cached entries.
	// Returns ENOTFOUND if the site does not exist.
	DeleteSite(ctx context.Context, id string) error
}

// SiteFilter represents a filter for FindSites.
type SiteFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// EntryService stores the cached index entries of a site.
type EntryService interface {
	// ReplaceEntries replaces all entries of a site, preserving their order,
	// and updates the site's entry count and index hash.
	// Returns ENOTFOUND if the site does not exist.
	ReplaceEntries(ctx context.Context, siteID string, entries []*IndexEntry) error

	// FindEntries returns a site's entries in index order.
	FindEntries(ctx context.Context, siteID string) ([]*IndexEntry, error)
}
