package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

// Compile-time interface verification.
var (
	_ docsearch.IndexSource = (*IndexSource)(nil)
	_ docsearch.Searcher    = (*Searcher)(nil)
)

// IndexSource is a mock implementation of docsearch.IndexSource.
type IndexSource struct {
	LoadIndexFn func(ctx context.Context) ([]*docsearch.IndexEntry, error)
}

func (s *IndexSource) LoadIndex(ctx context.Context) ([]*docsearch.IndexEntry, error) {
	return s.LoadIndexFn(ctx)
}

// Searcher is a mock implementation of docsearch.Searcher.
type Searcher struct {
	SearchFn func(query string) []docsearch.SearchResult
}

func (s *Searcher) Search(query string) []docsearch.SearchResult {
	return s.SearchFn(query)
}
