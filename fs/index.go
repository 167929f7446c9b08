// Package fs reads and writes search index documents on the local filesystem.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/docsearch"
)

// Ensure IndexFile implements the index interfaces at compile time.
var (
	_ docsearch.IndexSource = (*IndexFile)(nil)
	_ docsearch.IndexWriter = (*IndexFile)(nil)
)

// IndexFile is a search index document on disk.
type IndexFile struct {
	Path string
}

// NewIndexFile returns the index file at path. If path is a directory, the
// index is docsearch.IndexFilename inside it, matching a built site's layout.
func NewIndexFile(path string) *IndexFile {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, docsearch.IndexFilename)
	}
	return &IndexFile{Path: path}
}

// LoadIndex reads and decodes the index document.
// Returns EUNAVAILABLE if the file does not exist and EINVALID if it is not
// a JSON array of entries.
func (f *IndexFile) LoadIndex(ctx context.Context) ([]*docsearch.IndexEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, docsearch.Errorf(docsearch.EUNAVAILABLE, "index file %s does not exist", f.Path)
	} else if err != nil {
		return nil, err
	}

	var entries []*docsearch.IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "decoding index %s: %v", f.Path, err)
	}
	return entries, nil
}

// WriteIndex encodes entries as an index document. The document is written
// to a temporary file next to Path and renamed into place, so readers never
// see a partial index.
func (f *IndexFile) WriteIndex(ctx context.Context, entries []*docsearch.IndexEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := docsearch.ValidateEntries(entries); err != nil {
		return err
	}
	if entries == nil {
		entries = []*docsearch.IndexEntry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return err
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
