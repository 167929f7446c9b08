package docsearch

import (
	"context"
	"sync"
)

// IndexStore holds the in-memory search index. It starts empty and is
// populated at most once. Reads during a pending load see an empty index.
type IndexStore struct {
	mu       sync.RWMutex
	entries  []*IndexEntry
	loaded   bool
	attempts int
}

// NewIndexStore returns an empty, unloaded store.
func NewIndexStore() *IndexStore {
	return &IndexStore{}
}

// Load fetches entries from src and populates the store.
// Only the first call fetches; later calls return ECONFLICT.
// On failure the store stays empty and the error is returned unchanged
// so the caller can log it. There is no retry.
func (s *IndexStore) Load(ctx context.Context, src IndexSource) error {
	s.mu.Lock()
	s.attempts++
	first := s.attempts == 1
	s.mu.Unlock()

	if !first {
		return Errorf(ECONFLICT, "index load already attempted")
	}

	entries, err := src.LoadIndex(ctx)
	if err != nil {
		return err
	}
	if err := ValidateEntries(entries); err != nil {
		return err
	}

	s.mu.Lock()
	s.entries = entries
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// IsReady reports whether the index loaded successfully.
func (s *IndexStore) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Entries returns the loaded entries in index order, or nil if the store
// is not ready. The returned slice must not be modified.
func (s *IndexStore) Entries() []*IndexEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

// Len returns the number of loaded entries.
func (s *IndexStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Search matches query against the current entries.
func (s *IndexStore) Search(query string) []SearchResult {
	return Match(query, s.Entries())
}

// IndexLoader fills a search index from a source. *IndexStore is the
// canonical implementation; decorators wrap it.
type IndexLoader interface {
	Load(ctx context.Context, src IndexSource) error
	Len() int
}

var _ IndexLoader = (*IndexStore)(nil)

// Initialize creates a store and loads it from src in the background.
// The store is returned immediately; the channel receives the load error
// (nil on success) once and is then closed.
func Initialize(ctx context.Context, src IndexSource) (*IndexStore, <-chan error) {
	store := NewIndexStore()
	return store, LoadInBackground(ctx, store, src)
}

// LoadInBackground runs loader.Load in a new goroutine. The channel
// receives the load error (nil on success) once and is then closed.
func LoadInBackground(ctx context.Context, loader IndexLoader, src IndexSource) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- loader.Load(ctx, src)
	}()
	return done
}
