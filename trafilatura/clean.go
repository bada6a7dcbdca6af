// Package trafilatura provides a frontpage.Cleaner that keeps only the main
// content of a page, using go-trafilatura's boilerplate removal.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/newsdesk/frontpage"
)

// Ensure Cleaner implements frontpage.Cleaner at compile time.
var _ frontpage.Cleaner = (*Cleaner)(nil)

// Cleaner wraps go-trafilatura to extract the main content as plain text.
// Compared to the default strip cleaner it discards far more page chrome,
// at the cost of sometimes discarding headline listings on dense homepages.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean extracts the main content text and page title.
func (c *Cleaner) Clean(rawHTML string) (*frontpage.CleanResult, error) {
	if rawHTML == "" {
		return nil, frontpage.Errorf(frontpage.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EINVALID, "failed to extract content: %v", err)
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = frontpage.NoTitle
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		text = frontpage.NoBody
	}

	return &frontpage.CleanResult{Title: title, Text: text}, nil
}
