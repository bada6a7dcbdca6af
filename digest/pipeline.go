// Package digest orchestrates the news snapshot pipeline. It fetches every
// configured homepage, cleans the HTML down to readable text, combines the
// texts into a single capped prompt, and extracts categorized news from the
// combined content.
package digest

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/newsdesk/frontpage"
)

// SourceSeparator joins cleaned source texts in the combined prompt content.
const SourceSeparator = "\n\n--- NEXT WEBSITE ---\n\n"

// Pipeline runs the fetch, clean, and extract stages over the configured
// sources. Sources are processed sequentially in configuration order.
type Pipeline struct {
	Fetcher    frontpage.Fetcher
	Cleaner    frontpage.Cleaner
	Extractor  frontpage.Extractor
	Sources    []frontpage.Source
	Categories []frontpage.Category

	// MaxContentChars caps the combined text sent to the extractor,
	// counted in characters. Defaults to frontpage.DefaultMaxContentChars.
	MaxContentChars int
}

// Result holds the outcome of a pipeline run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// Snapshot is the normalized categorized news, dated at run time.
	Snapshot *frontpage.Snapshot

	// Sources holds per-source fetch statistics, in configuration order.
	Sources []SourceResult

	// CombinedChars counts the combined cleaned text before truncation.
	CombinedChars int

	// PromptChars counts the text actually sent to the extractor.
	PromptChars int

	// Truncated reports whether the combined text exceeded the cap.
	Truncated bool
}

// SourceResult holds per-source statistics for a successful run.
type SourceResult struct {
	Source frontpage.Source
	Title  string
	Chars  int
}

// ProgressEvent reports progress during a pipeline run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    frontpage.Source
	Chars     int
	Articles  int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressFetched
	ProgressFailed
	ProgressTruncated
	ProgressExtracted
	ProgressFinished
)

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)

// sourceOutcome holds the outcome of fetching and cleaning a single source.
type sourceOutcome struct {
	title string
	text  string
	err   error
}

// Run executes the pipeline. Every source is fetched even when an earlier
// one fails; if any source failed, the first failure in configuration order
// is returned and the extractor is not invoked. The progress callback, if
// provided, receives events as the run proceeds.
func (p *Pipeline) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	runID := uuid.New().String()
	total := len(p.Sources)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	outcomes := make([]sourceOutcome, total)
	for i, src := range p.Sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		outcomes[i] = p.processSource(ctx, src)

		if outcomes[i].err != nil {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					Source:    src,
					Error:     outcomes[i].err,
				})
			}
			continue
		}
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressFetched,
				Completed: i + 1,
				Total:     total,
				Source:    src,
				Chars:     utf8.RuneCountInString(outcomes[i].text),
			})
		}
	}

	// The first failure in source order aborts the run. Fetching continued
	// above so the progress output names every unreachable source.
	for i := range outcomes {
		if outcomes[i].err != nil {
			return nil, outcomes[i].err
		}
	}

	texts := make([]string, total)
	for i := range outcomes {
		texts[i] = outcomes[i].text
	}
	combined := strings.Join(texts, SourceSeparator)
	combinedChars := utf8.RuneCountInString(combined)

	maxChars := p.MaxContentChars
	if maxChars <= 0 {
		maxChars = frontpage.DefaultMaxContentChars
	}

	// Truncation always happens after concatenation, as a prefix cut in
	// characters rather than bytes.
	prompt := combined
	truncated := combinedChars > maxChars
	if truncated {
		prompt = string([]rune(combined)[:maxChars])
		if progress != nil {
			progress(ProgressEvent{
				Type:  ProgressTruncated,
				Total: total,
				Chars: maxChars,
			})
		}
	}

	news, err := p.Extractor.Extract(ctx, prompt)
	if err != nil {
		return nil, err
	}

	categories := p.Categories
	if len(categories) == 0 {
		categories = frontpage.DefaultCategories
	}
	normalized := news.Normalize(categories)

	snap := &frontpage.Snapshot{
		Date: time.Now().UTC(),
		News: normalized,
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:     ProgressExtracted,
			Total:    total,
			Articles: normalized.Articles(),
		})
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	sources := make([]SourceResult, total)
	for i, src := range p.Sources {
		sources[i] = SourceResult{
			Source: src,
			Title:  outcomes[i].title,
			Chars:  utf8.RuneCountInString(outcomes[i].text),
		}
	}

	return &Result{
		RunID:         runID,
		Snapshot:      snap,
		Sources:       sources,
		CombinedChars: combinedChars,
		PromptChars:   utf8.RuneCountInString(prompt),
		Truncated:     truncated,
	}, nil
}

// processSource fetches and cleans a single source.
func (p *Pipeline) processSource(ctx context.Context, src frontpage.Source) sourceOutcome {
	html, err := p.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return sourceOutcome{err: err}
	}

	cleaned, err := p.Cleaner.Clean(html)
	if err != nil {
		return sourceOutcome{err: err}
	}

	return sourceOutcome{title: cleaned.Title, text: cleaned.Text}
}
