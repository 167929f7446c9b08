// Package crawl checks that the pages of a documentation site carry working
// search: the page markup is present and the index it points at loads.
package crawl

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/docsearch"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages checked at once.
const DefaultConcurrency = 10

// Checker fetches pages and verifies their search setup.
type Checker struct {
	Fetcher     docsearch.Fetcher
	Inspector   docsearch.PageInspector
	RateLimiter docsearch.DomainLimiter

	// IndexSource returns the source for an absolute index URL.
	IndexSource func(indexURL string) docsearch.IndexSource

	Concurrency int
	RetryDelays []time.Duration
}

// PageReport is the outcome of checking one page.
type PageReport struct {
	URL string

	// Info is nil if the page could not be fetched or parsed.
	Info *docsearch.PageInfo

	// IndexURL is the absolute index location the page resolves to.
	IndexURL string

	// Entries is the number of entries in the page's index.
	Entries int

	// Err reports a fetch or parse failure.
	Err error

	// IndexErr reports an index that failed to load.
	IndexErr error
}

// OK reports whether the page has search markup and a loadable index.
func (r *PageReport) OK() bool {
	return r.Err == nil && r.IndexErr == nil && r.Info != nil && r.Info.SearchAvailable()
}

// Summary counts page outcomes.
type Summary struct {
	OK        int
	NoSearch  int
	BadIndex  int
	Failed    int
	IndexURLs int
}

// Summarize counts the reports by outcome.
func Summarize(reports []*PageReport) Summary {
	var s Summary
	indexes := make(map[string]struct{})
	for _, r := range reports {
		switch {
		case r.Err != nil:
			s.Failed++
		case !r.Info.SearchAvailable():
			s.NoSearch++
		case r.IndexErr != nil:
			s.BadIndex++
		default:
			s.OK++
		}
		if r.IndexURL != "" {
			indexes[r.IndexURL] = struct{}{}
		}
	}
	s.IndexURLs = len(indexes)
	return s
}

// ProgressEvent reports progress during a check.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Report    *PageReport
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressChecked
	ProgressFinished
)

// ProgressFunc is a callback for reporting check progress. Calls are
// serialized.
type ProgressFunc func(event ProgressEvent)

// indexResult caches one index load shared by every page that points at it.
type indexResult struct {
	once    sync.Once
	entries int
	err     error
}

// Check verifies every page in pageURLs and returns one report per page in
// input order. Page failures are recorded in the reports; the returned
// error is non-nil only if ctx is canceled.
func (c *Checker) Check(ctx context.Context, pageURLs []string, progress ProgressFunc) ([]*PageReport, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(pageURLs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	var (
		mu      sync.Mutex
		indexes = make(map[string]*indexResult)
	)
	loadIndex := func(ctx context.Context, indexURL string) (int, error) {
		mu.Lock()
		res, ok := indexes[indexURL]
		if !ok {
			res = &indexResult{}
			indexes[indexURL] = res
		}
		mu.Unlock()

		res.once.Do(func() {
			entries, err := c.IndexSource(indexURL).LoadIndex(ctx)
			if err == nil {
				err = docsearch.ValidateEntries(entries)
			}
			res.entries, res.err = len(entries), err
		})
		return res.entries, res.err
	}

	reports := make([]*PageReport, total)
	var (
		completed  int
		progressMu sync.Mutex
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, pageURL := range pageURLs {
		g.Go(func() error {
			report := c.checkPage(gctx, pageURL, loadIndex)
			reports[i] = report
			progressMu.Lock()
			defer progressMu.Unlock()
			completed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressChecked,
					Completed: completed,
					Total:     total,
					Report:    report,
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return reports, nil
}

func (c *Checker) checkPage(ctx context.Context, pageURL string, loadIndex func(context.Context, string) (int, error)) *PageReport {
	report := &PageReport{URL: pageURL}

	u, err := url.Parse(pageURL)
	if err != nil {
		report.Err = docsearch.Errorf(docsearch.EINVALID, "invalid page URL %q: %v", pageURL, err)
		return report
	}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			report.Err = err
			return report
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, c.Fetcher.Fetch, nil, delays)
	if err != nil {
		report.Err = err
		return report
	}

	info, err := c.Inspector.Inspect(html)
	if err != nil {
		report.Err = err
		return report
	}
	report.Info = info
	if !info.SearchAvailable() {
		return report
	}

	report.IndexURL, err = docsearch.ResolveURL(pageURL, info.IndexPath())
	if err != nil {
		report.IndexErr = err
		return report
	}
	report.Entries, report.IndexErr = loadIndex(ctx, report.IndexURL)
	return report
}
