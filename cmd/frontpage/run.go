package main

import (
	"fmt"

	"github.com/newsdesk/frontpage"
	"github.com/newsdesk/frontpage/digest"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	pipeline := &digest.Pipeline{
		Fetcher:         deps.Fetcher,
		Cleaner:         deps.Cleaner,
		Extractor:       deps.Extractor,
		Sources:         deps.Config.Sources,
		Categories:      deps.Config.Categories,
		MaxContentChars: deps.Config.MaxContentChars,
	}

	progress := func(event digest.ProgressEvent) {
		switch event.Type {
		case digest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d sources...\n", event.Total)
		case digest.ProgressFetched:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s (%d chars)\n",
				event.Completed, event.Total, sourceLabel(event.Source), event.Chars)
		case digest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %s\n",
				sourceLabel(event.Source), frontpage.ErrorMessage(event.Error))
		case digest.ProgressTruncated:
			fmt.Fprintf(deps.Stdout, "NOTE: combined content truncated to %d characters\n", event.Chars)
		case digest.ProgressExtracted:
			fmt.Fprintf(deps.Stdout, "Categorized %d articles\n", event.Articles)
		}
	}

	// Pipeline and store failures are reported on stderr with a zero exit.
	// Only startup failures fail the process.
	result, err := pipeline.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", frontpage.ErrorMessage(err))
		return nil
	}

	snap := result.Snapshot
	if err := deps.Snapshots.ReplaceSnapshot(deps.Ctx, snap); err != nil {
		fmt.Fprintf(deps.Stderr, "error storing snapshot: %s\n", frontpage.ErrorMessage(err))
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Stored snapshot for %s (%d articles)\n",
		snap.Date.Format("2006-01-02"), snap.News.Articles())

	if deps.Mirror != nil {
		if err := deps.Mirror.WriteSnapshot(deps.Ctx, snap); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing mirror: %s\n", frontpage.ErrorMessage(err))
			return nil
		}
	}

	deps.Logger.Info("pipeline run",
		"run_id", result.RunID,
		"sources", len(result.Sources),
		"chars", result.PromptChars,
		"truncated", result.Truncated,
		"articles", snap.News.Articles(),
	)

	return nil
}

// sourceLabel returns the display name for a source.
func sourceLabel(src frontpage.Source) string {
	if src.Name != "" {
		return src.Name
	}
	return src.URL
}
