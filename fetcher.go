package frontpage

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a plain GET against the URL and returns the response
	// body. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
