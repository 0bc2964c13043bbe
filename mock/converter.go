package mock

import "github.com/Muzammil-Ahm3d/jobready"

var _ jobready.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobready.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
