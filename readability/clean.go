// Package readability provides a frontpage.Cleaner that extracts the main
// content of a page using go-readability's scoring heuristic.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/newsdesk/frontpage"
)

// Ensure Cleaner implements frontpage.Cleaner at compile time.
var _ frontpage.Cleaner = (*Cleaner)(nil)

// Cleaner wraps go-readability to extract the main content as plain text.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EINVALID, "failed to extract content: %v", err)
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = frontpage.NoTitle
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		text = frontpage.NoBody
	}

	return &frontpage.CleanResult{Title: title, Text: text}, nil
}
