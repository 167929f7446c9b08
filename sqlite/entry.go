package sqlite

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsearch"
)

// Compile-time interface verification.
var _ docsearch.EntryService = (*EntryService)(nil)

// EntryService implements docsearch.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// HashEntries computes an xxHash over the entries in order and returns it
// as a hex string. Equal indexes always hash equally.
func HashEntries(entries []*docsearch.IndexEntry) string {
	d := xxhash.New()
	enc := json.NewEncoder(d)
	for _, e := range entries {
		// Encoding a plain struct into a hash cannot fail.
		_ = enc.Encode(e)
	}
	return hex.EncodeToString(d.Sum(nil))
}

// ReplaceEntries replaces all entries of a site in a single transaction and
// records the new entry count and index hash on the site.
func (s *EntryService) ReplaceEntries(ctx context.Context, siteID string, entries []*docsearch.IndexEntry) error {
	if err := docsearch.ValidateEntries(entries); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		UPDATE sites SET index_hash = ?, entry_count = ?, updated_at = ? WHERE id = ?
	`, HashEntries(entries), len(entries), time.Now().UTC().Format(time.RFC3339), siteID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return docsearch.Errorf(docsearch.ENOTFOUND, "site not found")
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries WHERE site_id = ?", siteID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (site_id, position, title, headings, breadcrumbs, url)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		headings, err := encodeStrings(e.Headings)
		if err != nil {
			return err
		}
		breadcrumbs, err := encodeStrings(e.Breadcrumbs)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, siteID, i, e.Title, headings, breadcrumbs, e.URL); err != nil {
			return fmt.Errorf("inserting entry %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// FindEntries returns a site's entries in index order.
func (s *EntryService) FindEntries(ctx context.Context, siteID string) ([]*docsearch.IndexEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, headings, breadcrumbs, url
		FROM entries
		WHERE site_id = ?
		ORDER BY position ASC
	`, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*docsearch.IndexEntry
	for rows.Next() {
		var e docsearch.IndexEntry
		var headings, breadcrumbs string
		if err := rows.Scan(&e.Title, &headings, &breadcrumbs, &e.URL); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(headings), &e.Headings); err != nil {
			return nil, fmt.Errorf("failed to parse headings: %w", err)
		}
		if err := json.Unmarshal([]byte(breadcrumbs), &e.Breadcrumbs); err != nil {
			return nil, fmt.Errorf("failed to parse breadcrumbs: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

func encodeStrings(ss []string) (string, error) {
	if ss == nil {
		ss = []string{}
	}
	b, err := json.Marshal(ss)
	return string(b), err
}
