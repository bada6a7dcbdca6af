package mock

import (
	"context"

	"github.com/newsdesk/frontpage"
)

var _ frontpage.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of frontpage.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, text string) (frontpage.CategorizedNews, error)
}

func (e *Extractor) Extract(ctx context.Context, text string) (frontpage.CategorizedNews, error) {
	return e.ExtractFn(ctx, text)
}
