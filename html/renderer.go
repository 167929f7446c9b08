// Package html renders search results as the markup fragment inserted into
// a documentation page's result panel.
package html

import (
	"strconv"
	"strings"

	"github.com/fwojciec/docsearch"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class names of the rendered markup.
const (
	ClassItem        = "search-result-item"
	ClassTitle       = "search-result-title"
	ClassBreadcrumbs = "search-result-breadcrumbs"
	ClassNoResults   = "search-no-results"
	ClassSelected    = "selected"
	ClassActive      = "active"
)

// NoResultsText is shown when a query matches nothing.
const NoResultsText = "No results found"

// Ensure Renderer implements docsearch.ResultRenderer at compile time.
var _ docsearch.ResultRenderer = (*Renderer)(nil)

// Renderer builds result markup as a node tree and serializes it, so every
// text node and attribute value is escaped on output.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the result list for query. Each result becomes one
// activatable item carrying its URL and position; an empty slice renders
// the single "no results" placeholder.
func (r *Renderer) Render(results []docsearch.SearchResult, query string) (string, error) {
	return render(list(results, query, docsearch.NoSelection)...)
}

// RenderPanel returns the whole result panel for state. The panel carries
// the active class only while showing, so a hidden panel and a panel
// showing "no results" are distinguishable. The selected item, if any,
// carries the selected class.
func (r *Renderer) RenderPanel(state docsearch.State) (string, error) {
	panel := element(atom.Div, attr("id", docsearch.SearchResultsID))
	if state.Phase == docsearch.PhaseShowing {
		panel.Attr = append(panel.Attr, attr("class", ClassActive))
		for _, n := range list(state.Results, state.Query, state.Selected) {
			panel.AppendChild(n)
		}
	}
	return render(panel)
}

func list(results []docsearch.SearchResult, query string, selected int) []*xhtml.Node {
	if len(results) == 0 {
		div := element(atom.Div, attr("class", ClassNoResults))
		div.AppendChild(text(NoResultsText))
		return []*xhtml.Node{div}
	}

	nodes := make([]*xhtml.Node, 0, len(results))
	for i, res := range results {
		nodes = append(nodes, item(i, res, query, i == selected))
	}
	return nodes
}

func item(index int, res docsearch.SearchResult, query string, selected bool) *xhtml.Node {
	class := ClassItem
	if selected {
		class += " " + ClassSelected
	}
	div := element(atom.Div,
		attr("class", class),
		attr("data-url", res.Entry.URL),
		attr("data-index", strconv.Itoa(index)),
	)

	title := element(atom.Div, attr("class", ClassTitle))
	for _, seg := range docsearch.Highlight(res.Entry.Title, query) {
		if !seg.Match {
			title.AppendChild(text(seg.Text))
			continue
		}
		strong := element(atom.Strong)
		strong.AppendChild(text(seg.Text))
		title.AppendChild(strong)
	}
	div.AppendChild(title)

	crumbs := element(atom.Div, attr("class", ClassBreadcrumbs))
	if s := docsearch.FormatBreadcrumbs(res.Entry) + docsearch.FormatMatchInfo(res); s != "" {
		crumbs.AppendChild(text(s))
	}
	div.AppendChild(crumbs)

	return div
}

func element(a atom.Atom, attrs ...xhtml.Attribute) *xhtml.Node {
	return &xhtml.Node{
		Type:     xhtml.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) xhtml.Attribute {
	return xhtml.Attribute{Key: key, Val: val}
}

func text(s string) *xhtml.Node {
	return &xhtml.Node{Type: xhtml.TextNode, Data: s}
}

func render(nodes ...*xhtml.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		if err := xhtml.Render(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}
