package mock

import (
	"context"

	"github.com/newsdesk/frontpage"
)

var _ frontpage.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of frontpage.SnapshotService.
type SnapshotService struct {
	ReplaceSnapshotFn func(ctx context.Context, snap *frontpage.Snapshot) error
	LatestSnapshotFn  func(ctx context.Context) (*frontpage.Snapshot, error)
}

func (s *SnapshotService) ReplaceSnapshot(ctx context.Context, snap *frontpage.Snapshot) error {
	return s.ReplaceSnapshotFn(ctx, snap)
}

func (s *SnapshotService) LatestSnapshot(ctx context.Context) (*frontpage.Snapshot, error) {
	return s.LatestSnapshotFn(ctx)
}

var _ frontpage.SnapshotWriter = (*SnapshotWriter)(nil)

// SnapshotWriter is a mock implementation of frontpage.SnapshotWriter.
type SnapshotWriter struct {
	WriteSnapshotFn func(ctx context.Context, snap *frontpage.Snapshot) error
}

func (w *SnapshotWriter) WriteSnapshot(ctx context.Context, snap *frontpage.Snapshot) error {
	return w.WriteSnapshotFn(ctx, snap)
}
