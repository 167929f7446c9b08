package docsearch

import (
	"slices"
	"strings"
)

// MinQueryLength is the shortest query, in characters, that is searched.
// Shorter queries close the result panel instead.
const MinQueryLength = 2

// MaxResults caps the number of results returned for a query.
const MaxResults = 10

// Score weights.
const (
	ScoreTitleMatch   = 100
	ScoreExactTitle   = 50
	ScoreTitlePrefix  = 25
	ScoreHeadingMatch = 10
)

// SearchResult is one ranked match for a query. It is derived per query
// and never persisted.
type SearchResult struct {
	Entry *IndexEntry

	// HeadingMatches are the entry's headings containing the query,
	// in document order.
	HeadingMatches []string

	Score int
}

// Searcher answers queries against an index.
type Searcher interface {
	Search(query string) []SearchResult
}

// SearcherFunc adapts a function to the Searcher interface.
type SearcherFunc func(query string) []SearchResult

// Search calls f(query).
func (f SearcherFunc) Search(query string) []SearchResult {
	return f(query)
}

// Match scores every entry against query and returns the best MaxResults
// matches by descending score. Entries with equal scores keep their index
// order. Matching is a case-insensitive substring test on the title and
// each heading. An empty query matches nothing.
//
// Callers gate on MinQueryLength; Match does not.
func Match(query string, entries []*IndexEntry) []SearchResult {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	var results []SearchResult
	for _, e := range entries {
		if r, ok := score(q, e); ok {
			results = append(results, r)
		}
	}

	slices.SortStableFunc(results, func(a, b SearchResult) int {
		return b.Score - a.Score
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// score evaluates a single entry against the lowercased query.
func score(q string, e *IndexEntry) (SearchResult, bool) {
	title := strings.ToLower(e.Title)
	titleMatch := strings.Contains(title, q)

	var headings []string
	for _, h := range e.Headings {
		if strings.Contains(strings.ToLower(h), q) {
			headings = append(headings, h)
		}
	}

	if !titleMatch && len(headings) == 0 {
		return SearchResult{}, false
	}

	s := 0
	if titleMatch {
		s += ScoreTitleMatch
		if title == q {
			s += ScoreExactTitle
		}
		if strings.HasPrefix(title, q) {
			s += ScoreTitlePrefix
		}
	}
	s += ScoreHeadingMatch * len(headings)

	return SearchResult{Entry: e, HeadingMatches: headings, Score: s}, true
}
