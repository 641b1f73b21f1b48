package mock

import "github.com/fwojciec/crawlrag"

var _ crawlrag.Converter = (*Converter)(nil)

// Converter is a mock implementation of crawlrag.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
