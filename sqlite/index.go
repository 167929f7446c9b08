package sqlite

import (
	"context"

	"github.com/fwojciec/docsearch"
)

// Ensure IndexSource implements docsearch.IndexSource at compile time.
var _ docsearch.IndexSource = (*IndexSource)(nil)

// IndexSource serves a cached site's index, so search works offline.
type IndexSource struct {
	entries *EntryService
	siteID  string
}

// NewIndexSource returns an IndexSource for the site with siteID.
func NewIndexSource(db *DB, siteID string) *IndexSource {
	return &IndexSource{entries: NewEntryService(db), siteID: siteID}
}

// LoadIndex returns the cached entries of the site.
func (s *IndexSource) LoadIndex(ctx context.Context) ([]*docsearch.IndexEntry, error) {
	return s.entries.FindEntries(ctx, s.siteID)
}
