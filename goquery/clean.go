// Package goquery provides the default frontpage.Cleaner implementation.
// It strips a fixed set of non-content elements from the page body and
// returns the remaining visible text.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/newsdesk/frontpage"
	"golang.org/x/net/html"
)

// denylist is the set of elements removed from the body before text
// extraction. News homepages carry their chrome (navigation, mastheads,
// subscription forms) in these elements.
const denylist = "script, style, img, input, nav, footer, header, form"

// Ensure Cleaner implements frontpage.Cleaner at compile time.
var _ frontpage.Cleaner = (*Cleaner)(nil)

// Cleaner reduces homepage HTML to readable text by removing denylisted
// elements and collecting the remaining text nodes in document order.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean parses the HTML, removes denylisted elements from the body, and
// returns the page title plus the remaining text, one trimmed segment per
// line. The title falls back to frontpage.NoTitle and the text to
// frontpage.NoBody when nothing usable is present.
func (c *Cleaner) Clean(rawHTML string) (*frontpage.CleanResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = frontpage.NoTitle
	}

	body := doc.Find("body").First()
	body.Find(denylist).Remove()

	var segments []string
	for _, node := range body.Nodes {
		segments = appendTextSegments(segments, node)
	}

	text := strings.Join(segments, "\n")
	if text == "" {
		text = frontpage.NoBody
	}

	return &frontpage.CleanResult{Title: title, Text: text}, nil
}

// appendTextSegments walks the node tree depth-first and appends each
// non-empty trimmed text node to segments, preserving document order.
func appendTextSegments(segments []string, n *html.Node) []string {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			segments = append(segments, s)
		}
		return segments
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		segments = appendTextSegments(segments, child)
	}
	return segments
}
