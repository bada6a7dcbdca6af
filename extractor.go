package frontpage

import "context"

// Extractor turns combined homepage text into categorized news.
type Extractor interface {
	// Extract identifies the news stories in text and classifies them.
	// The returned map is not normalized; callers should Normalize it
	// against their configured category list.
	Extract(ctx context.Context, text string) (CategorizedNews, error)
}
