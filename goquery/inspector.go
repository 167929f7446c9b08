// Package goquery inspects documentation page HTML for the markup that
// client-side search depends on.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsearch"
)

// Ensure Inspector implements docsearch.PageInspector at compile time.
var _ docsearch.PageInspector = (*Inspector)(nil)

// configVar is the global a page sets to configure its scripts.
const configVar = "DOCS_CONFIG"

// assetsPathRe captures the assetsPath property of a configuration object
// literal, quoted or unquoted key, single or double quoted value.
var assetsPathRe = regexp.MustCompile(`["']?assetsPath["']?\s*:\s*(?:"([^"]*)"|'([^']*)')`)

// Inspector finds the search input, the result panel and the configured
// assets path in page HTML.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses html and reports the search markup it contains.
// Returns EINVALID if the HTML cannot be parsed.
func (i *Inspector) Inspect(html string) (*docsearch.PageInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "failed to parse HTML: %v", err)
	}

	info := &docsearch.PageInfo{
		HasSearchInput:   doc.Find("#"+docsearch.SearchInputID).Length() > 0,
		HasSearchResults: doc.Find("#"+docsearch.SearchResultsID).Length() > 0,
	}

	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if _, external := s.Attr("src"); external {
			return true
		}
		if path, ok := assetsPath(s.Text()); ok {
			info.AssetsPath = path
			return false
		}
		return true
	})

	return info, nil
}

// assetsPath extracts the assets path from an inline script that assigns
// the page configuration.
func assetsPath(script string) (string, bool) {
	idx := strings.Index(script, configVar)
	if idx < 0 {
		return "", false
	}
	m := assetsPathRe.FindStringSubmatch(script[idx:])
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}
