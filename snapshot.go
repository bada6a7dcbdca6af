package frontpage

import (
	"context"
	"time"
)

// Snapshot is the categorized news produced by a single pipeline run.
// The store holds at most one snapshot: each successful run replaces
// whatever was there before.
type Snapshot struct {
	Date time.Time       `json:"date" bson:"date"`
	News CategorizedNews `json:"news" bson:"news"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Date.IsZero() {
		return Errorf(EINVALID, "snapshot date required")
	}
	if s.News == nil {
		return Errorf(EINVALID, "snapshot news required")
	}
	return nil
}

// SnapshotService stores and retrieves the current snapshot.
type SnapshotService interface {
	// ReplaceSnapshot removes all stored snapshots and saves snap as the
	// only one. The store never holds more than one snapshot afterwards.
	ReplaceSnapshot(ctx context.Context, snap *Snapshot) error

	// LatestSnapshot returns the most recently dated snapshot.
	// Returns ENOTFOUND if the store is empty.
	LatestSnapshot(ctx context.Context) (*Snapshot, error)
}

// SnapshotWriter mirrors a snapshot outside the primary store, for example
// as a JSON file served by a static site.
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, snap *Snapshot) error
}
