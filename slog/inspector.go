package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
)

// Ensure LoggingInspector implements docsearch.PageInspector.
var _ docsearch.PageInspector = (*LoggingInspector)(nil)

// LoggingInspector wraps a PageInspector with debug logging.
type LoggingInspector struct {
	next   docsearch.PageInspector
	logger *slog.Logger
}

// NewLoggingInspector creates a new LoggingInspector.
func NewLoggingInspector(next docsearch.PageInspector, logger *slog.Logger) *LoggingInspector {
	return &LoggingInspector{next: next, logger: logger}
}

// Inspect delegates to the wrapped inspector and logs what was found.
func (i *LoggingInspector) Inspect(html string) (info *docsearch.PageInfo, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin), "err", err}
		if info != nil {
			attrs = append(attrs,
				"search", info.SearchAvailable(),
				"assets_path", info.AssetsPath,
			)
		}
		i.logger.Debug("page inspection", attrs...)
	}(time.Now())
	return i.next.Inspect(html)
}
