package mock

import "github.com/fwojciec/crawlrag"

var _ crawlrag.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of crawlrag.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*crawlrag.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*crawlrag.ExtractResult, error) {
	return e.ExtractFn(html)
}
