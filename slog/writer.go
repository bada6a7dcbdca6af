package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/newsdesk/frontpage"
)

// Ensure LoggingSnapshotWriter implements frontpage.SnapshotWriter.
var _ frontpage.SnapshotWriter = (*LoggingSnapshotWriter)(nil)

// LoggingSnapshotWriter wraps a SnapshotWriter with logging.
type LoggingSnapshotWriter struct {
	next   frontpage.SnapshotWriter
	logger *slog.Logger
}

// NewLoggingSnapshotWriter creates a new LoggingSnapshotWriter.
func NewLoggingSnapshotWriter(next frontpage.SnapshotWriter, logger *slog.Logger) *LoggingSnapshotWriter {
	return &LoggingSnapshotWriter{next: next, logger: logger}
}

// WriteSnapshot delegates to the wrapped writer and logs the operation.
func (w *LoggingSnapshotWriter) WriteSnapshot(ctx context.Context, snap *frontpage.Snapshot) (err error) {
	articles := 0
	if snap != nil {
		articles = snap.News.Articles()
	}
	defer func(begin time.Time) {
		w.logger.Info("mirror write",
			"articles", articles,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteSnapshot(ctx, snap)
}
