package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docsearch.SiteService = (*SiteService)(nil)

const siteColumns = "id, name, base_url, assets_path, index_hash, entry_count, created_at, updated_at"

// SiteService implements docsearch.SiteService using SQLite.
type SiteService struct {
	db *DB
}

// NewSiteService creates a new SiteService.
func NewSiteService(db *DB) *SiteService {
	return &SiteService{db: db}
}

// CreateSite creates a new site. Returns ECONFLICT if a site with the same
// name exists.
func (s *SiteService) CreateSite(ctx context.Context, site *docsearch.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sites WHERE name = ?", site.Name).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return docsearch.Errorf(docsearch.ECONFLICT, "site %q already exists", site.Name)
	}

	site.ID = uuid.New().String()
	now := time.Now().UTC()
	site.CreatedAt = now
	site.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sites (id, name, base_url, assets_path, index_hash, entry_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, site.ID, site.Name, site.BaseURL, site.AssetsPath, site.IndexHash, site.EntryCount,
		site.CreatedAt.Format(time.RFC3339), site.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindSiteByID retrieves a site by ID.
func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*docsearch.Site, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+siteColumns+" FROM sites WHERE id = ?", id)
	site, err := scanSite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docsearch.Errorf(docsearch.ENOTFOUND, "site not found")
	}
	return site, err
}

// FindSites retrieves sites matching the filter, ordered by name.
func (s *SiteService) FindSites(ctx context.Context, filter docsearch.SiteFilter) ([]*docsearch.Site, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + siteColumns + " FROM sites WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*docsearch.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}

	return sites, rows.Err()
}

// DeleteSite permanently removes a site. Its entries are removed by the
// foreign key cascade.
func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sites WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docsearch.Errorf(docsearch.ENOTFOUND, "site not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSite(row scanner) (*docsearch.Site, error) {
	var site docsearch.Site
	var createdAt, updatedAt string

	if err := row.Scan(&site.ID, &site.Name, &site.BaseURL, &site.AssetsPath, &site.IndexHash,
		&site.EntryCount, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if site.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if site.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &site, nil
}
