package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fwojciec/docsearch"
)

// Ensure IndexSource implements docsearch.IndexSource at compile time.
var _ docsearch.IndexSource = (*IndexSource)(nil)

// IndexSource loads a search index document over HTTP.
type IndexSource struct {
	URL string

	client *http.Client
}

// NewIndexSource returns an IndexSource reading the index at url.
func NewIndexSource(url string, opts ...Option) *IndexSource {
	o := newOptions(opts)
	return &IndexSource{URL: url, client: o.client}
}

// LoadIndex fetches and decodes the index document.
// Transport failures and non-2xx responses return EUNAVAILABLE; a body
// that is not a JSON array of entries returns EINVALID.
func (s *IndexSource) LoadIndex(ctx context.Context) ([]*docsearch.IndexEntry, error) {
	body, err := get(ctx, s.client, s.URL)
	if err != nil {
		if docsearch.ErrorCode(err) != docsearch.EINTERNAL {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, docsearch.Errorf(docsearch.EUNAVAILABLE, "fetching %s: %v", s.URL, err)
	}
	defer body.Close()

	var entries []*docsearch.IndexEntry
	if err := json.NewDecoder(body).Decode(&entries); err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "decoding index %s: %v", s.URL, err)
	}
	return entries, nil
}
