package docsearch

import (
	"net/url"
	"strings"
)

// Display separators used by result renderers.
const (
	BreadcrumbSeparator = " > "
	MatchInfoSeparator  = " - "
	HeadingSeparator    = ", "
)

// MaxHeadingSnippets is the number of heading matches shown per result.
const MaxHeadingSnippets = 2

// IndexFilename is the name of the search index at the site root.
const IndexFilename = "search-index.json"

// assetsSuffix is stripped from the configured assets path to reach the
// site root.
const assetsSuffix = "assets/"

// FormatBreadcrumbs joins an entry's breadcrumbs for display.
func FormatBreadcrumbs(e *IndexEntry) string {
	return strings.Join(e.Breadcrumbs, BreadcrumbSeparator)
}

// FormatMatchInfo returns the heading snippet shown after the breadcrumbs:
// a leading separator followed by up to MaxHeadingSnippets heading matches.
// Returns "" if no headings matched.
func FormatMatchInfo(r SearchResult) string {
	if len(r.HeadingMatches) == 0 {
		return ""
	}
	headings := r.HeadingMatches
	if len(headings) > MaxHeadingSnippets {
		headings = headings[:MaxHeadingSnippets]
	}
	return MatchInfoSeparator + strings.Join(headings, HeadingSeparator)
}

// IndexPath derives the index location from the configured assets path.
// The index lives at the site root rather than next to the assets, so a
// trailing "assets/" is removed before IndexFilename is appended.
// An empty assets path is treated as "./".
func IndexPath(assetsPath string) string {
	if assetsPath == "" {
		assetsPath = "./"
	}
	return strings.TrimSuffix(assetsPath, assetsSuffix) + IndexFilename
}

// ResolveURL resolves ref against base. Absolute refs are returned as-is.
func ResolveURL(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", Errorf(EINVALID, "invalid base URL %q: %v", base, err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", ref, err)
	}
	return b.ResolveReference(r).String(), nil
}
