package mock

import "github.com/newsdesk/frontpage"

var _ frontpage.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of frontpage.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (*frontpage.CleanResult, error)
}

func (c *Cleaner) Clean(html string) (*frontpage.CleanResult, error) {
	return c.CleanFn(html)
}
