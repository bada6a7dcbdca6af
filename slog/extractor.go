package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/newsdesk/frontpage"
)

// Ensure LoggingExtractor implements frontpage.Extractor.
var _ frontpage.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   frontpage.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next frontpage.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
// Input size is counted in characters to match the prompt cap.
func (e *LoggingExtractor) Extract(ctx context.Context, text string) (news frontpage.CategorizedNews, err error) {
	defer func(begin time.Time) {
		e.logger.Info("news extraction",
			"chars", len([]rune(text)),
			"articles", news.Articles(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, text)
}
