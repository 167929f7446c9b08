package mock

import "github.com/fwojciec/docsearch"

var _ docsearch.PageInspector = (*PageInspector)(nil)

// PageInspector is a mock implementation of docsearch.PageInspector.
type PageInspector struct {
	InspectFn func(html string) (*docsearch.PageInfo, error)
}

func (i *PageInspector) Inspect(html string) (*docsearch.PageInfo, error) {
	return i.InspectFn(html)
}
