package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/newsdesk/frontpage"
)

// Ensure LoggingSnapshotService implements frontpage.SnapshotService.
var _ frontpage.SnapshotService = (*LoggingSnapshotService)(nil)

// LoggingSnapshotService wraps a SnapshotService with logging.
type LoggingSnapshotService struct {
	next   frontpage.SnapshotService
	logger *slog.Logger
}

// NewLoggingSnapshotService creates a new LoggingSnapshotService.
func NewLoggingSnapshotService(next frontpage.SnapshotService, logger *slog.Logger) *LoggingSnapshotService {
	return &LoggingSnapshotService{next: next, logger: logger}
}

// ReplaceSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) ReplaceSnapshot(ctx context.Context, snap *frontpage.Snapshot) (err error) {
	articles := 0
	if snap != nil {
		articles = snap.News.Articles()
	}
	defer func(begin time.Time) {
		s.logger.Info("snapshot replace",
			"articles", articles,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceSnapshot(ctx, snap)
}

// LatestSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) LatestSnapshot(ctx context.Context) (snap *frontpage.Snapshot, err error) {
	defer func(begin time.Time) {
		date := ""
		if snap != nil {
			date = snap.Date.Format("2006-01-02")
		}
		s.logger.Info("snapshot load",
			"date", date,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LatestSnapshot(ctx)
}
