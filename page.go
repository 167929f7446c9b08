package docsearch

// Page markup contract consumed by the search subsystem.
const (
	SearchInputID   = "search-input"
	SearchResultsID = "search-results"
)

// PageInfo describes the search markup found on a documentation page.
type PageInfo struct {
	HasSearchInput   bool
	HasSearchResults bool

	// AssetsPath is the assets path configured on the page, or "" if the
	// page does not configure one.
	AssetsPath string
}

// SearchAvailable reports whether the page carries both elements search
// needs. Pages without them get no search at all.
func (p *PageInfo) SearchAvailable() bool {
	return p.HasSearchInput && p.HasSearchResults
}

// IndexPath returns the index location relative to the page.
func (p *PageInfo) IndexPath() string {
	return IndexPath(p.AssetsPath)
}

// PageInspector extracts search markup information from page HTML.
type PageInspector interface {
	Inspect(html string) (*PageInfo, error)
}

// ResultRenderer turns ranked results into display markup.
type ResultRenderer interface {
	// Render returns the markup of the whole result list for query.
	// An empty results slice renders the "no results" placeholder.
	Render(results []SearchResult, query string) (string, error)
}
