package main

import (
	"fmt"
	"strings"

	"github.com/newsdesk/frontpage"
)

// previewChars is how much cleaned text preview prints without --full.
const previewChars = 500

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	sources := deps.Config.Sources
	if c.Source != "" {
		sources = filterSources(sources, c.Source)
		if len(sources) == 0 {
			fmt.Fprintf(deps.Stderr, "error: no source named %q. Check the sources in your config file.\n", c.Source)
			return frontpage.Errorf(frontpage.ENOTFOUND, "no source named %q", c.Source)
		}
	}

	for i, src := range sources {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "== %s (%s)\n", sourceLabel(src), src.URL)

		html, err := deps.Fetcher.Fetch(deps.Ctx, src.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", frontpage.ErrorMessage(err))
			continue
		}

		cleaned, err := deps.Cleaner.Clean(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", frontpage.ErrorMessage(err))
			continue
		}

		fmt.Fprintf(deps.Stdout, "Title: %s\n", cleaned.Title)
		fmt.Fprintf(deps.Stdout, "%d characters\n\n", len([]rune(cleaned.Text)))

		text := cleaned.Text
		if !c.Full {
			text = truncateText(text, previewChars)
		}
		fmt.Fprintln(deps.Stdout, text)
	}

	return nil
}

// filterSources returns the sources matching a name or URL.
func filterSources(sources []frontpage.Source, query string) []frontpage.Source {
	var matched []frontpage.Source
	for _, src := range sources {
		if strings.EqualFold(src.Name, query) || src.URL == query {
			matched = append(matched, src)
		}
	}
	return matched
}

// truncateText cuts text to max characters, marking the cut.
func truncateText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "\n..."
}
