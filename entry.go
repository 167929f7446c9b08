package docsearch

import "context"

// IndexEntry is the searchable metadata of one documented page.
type IndexEntry struct {
	// Title is the page's display title. Required.
	Title string `json:"title"`

	// Headings are the section headings on the page in document order.
	Headings []string `json:"headings"`

	// Breadcrumbs is the hierarchical path to the page, root first.
	// Used for display only.
	Breadcrumbs []string `json:"breadcrumbs"`

	// URL is the navigation target. It is opaque and may be relative to
	// the site root.
	URL string `json:"url"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *IndexEntry) Validate() error {
	if e.Title == "" {
		return Errorf(EINVALID, "index entry title required")
	}
	return nil
}

// IndexSource loads a search index from wherever it is kept.
// Implementations exist for HTTP, the local filesystem and the SQLite cache.
type IndexSource interface {
	// LoadIndex returns the entries in index order.
	// Returns EUNAVAILABLE if the index cannot be reached and EINVALID if
	// it cannot be decoded.
	LoadIndex(ctx context.Context) ([]*IndexEntry, error)
}

// ValidateEntries validates every entry, reporting the first failure with
// its position in the index.
func ValidateEntries(entries []*IndexEntry) error {
	for i, e := range entries {
		if e == nil {
			return Errorf(EINVALID, "index entry %d is null", i)
		}
		if err := e.Validate(); err != nil {
			return Errorf(EINVALID, "index entry %d: %s", i, ErrorMessage(err))
		}
	}
	return nil
}

// IndexWriter persists a search index document.
type IndexWriter interface {
	// WriteIndex replaces the document with entries, in order.
	WriteIndex(ctx context.Context, entries []*IndexEntry) error
}
