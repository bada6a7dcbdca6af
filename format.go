package frontpage

import (
	"fmt"
	"strings"
)

// FormatSnapshot formats a snapshot for terminal display. Categories are
// rendered in the given order; categories absent from the snapshot are
// shown as empty.
func FormatSnapshot(snap *Snapshot, categories []Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "News for %s (%d articles)\n", snap.Date.Format("2006-01-02"), snap.News.Articles())

	for _, cat := range categories {
		articles := snap.News[cat]
		fmt.Fprintf(&b, "\n## %s (%d)\n", cat, len(articles))
		for _, a := range articles {
			fmt.Fprintf(&b, "\n- %s\n", a.Headline)
			if a.Summary != "" {
				fmt.Fprintf(&b, "  %s\n", a.Summary)
			}
			for _, p := range a.KeyPoints {
				fmt.Fprintf(&b, "  * %s\n", p)
			}
		}
	}

	return b.String()
}
