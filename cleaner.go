package frontpage

// Markers used when a page yields no usable title or body text. They flow
// through to the extraction prompt and preview output verbatim.
const (
	NoTitle = "No title found"
	NoBody  = "No body content found"
)

// CleanResult holds the readable content extracted from a homepage.
type CleanResult struct {
	// Title is the page title, or NoTitle when the page has none.
	Title string

	// Text is the visible text with markup and boilerplate removed, one
	// extracted segment per line. NoBody when nothing could be extracted.
	Text string
}

// Cleaner reduces raw homepage HTML to readable text.
type Cleaner interface {
	Clean(html string) (*CleanResult, error)
}
