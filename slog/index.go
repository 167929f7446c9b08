package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
)

// Compile-time interface verification.
var (
	_ docsearch.IndexSource = (*LoggingIndexSource)(nil)
	_ docsearch.IndexLoader = (*LoggingIndexLoader)(nil)
	_ docsearch.Searcher    = (*LoggingSearcher)(nil)
)

// LoggingIndexSource wraps an IndexSource with logging. A failed load is
// logged at error level; it is otherwise invisible to the user.
type LoggingIndexSource struct {
	next   docsearch.IndexSource
	source string
	logger *slog.Logger
}

// NewLoggingIndexSource creates a new LoggingIndexSource. source names the
// index location in log records.
func NewLoggingIndexSource(next docsearch.IndexSource, source string, logger *slog.Logger) *LoggingIndexSource {
	return &LoggingIndexSource{next: next, source: source, logger: logger}
}

// LoadIndex delegates to the wrapped source and logs the operation.
func (s *LoggingIndexSource) LoadIndex(ctx context.Context) (entries []*docsearch.IndexEntry, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "index load",
			"source", s.source,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadIndex(ctx)
}

// LoggingIndexLoader wraps an IndexLoader with logging. Unlike
// LoggingIndexSource it also sees entries the loader rejects after
// decoding, so an index that fails validation is logged at error level.
type LoggingIndexLoader struct {
	next   docsearch.IndexLoader
	source string
	logger *slog.Logger
}

// NewLoggingIndexLoader creates a new LoggingIndexLoader. source names the
// index location in log records.
func NewLoggingIndexLoader(next docsearch.IndexLoader, source string, logger *slog.Logger) *LoggingIndexLoader {
	return &LoggingIndexLoader{next: next, source: source, logger: logger}
}

// Load delegates to the wrapped loader and logs the outcome.
func (l *LoggingIndexLoader) Load(ctx context.Context, src docsearch.IndexSource) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		l.logger.Log(ctx, level, "index load",
			"source", l.source,
			"count", l.next.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, src)
}

// Len returns the entry count of the wrapped loader.
func (l *LoggingIndexLoader) Len() int {
	return l.next.Len()
}

// LoggingSearcher wraps a Searcher with debug logging of every query.
type LoggingSearcher struct {
	next   docsearch.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next docsearch.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query.
func (s *LoggingSearcher) Search(query string) (results []docsearch.SearchResult) {
	defer func(begin time.Time) {
		s.logger.Debug("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(query)
}
