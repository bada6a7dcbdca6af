package mongo

import (
	"context"
	"errors"

	"github.com/newsdesk/frontpage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time interface verification.
var _ frontpage.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements frontpage.SnapshotService using MongoDB.
// The collection holds at most one document of the shape {date, news}.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// ReplaceSnapshot clears the collection and inserts snap as the only
// document. Readers polling the collection between the delete and the
// insert can observe an empty result; the consumer treats that the same
// as no snapshot yet.
func (s *SnapshotService) ReplaceSnapshot(ctx context.Context, snap *frontpage.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	coll := s.db.snapshots()
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return frontpage.Errorf(frontpage.EINTERNAL, "failed to clear snapshots: %v", err)
	}
	if _, err := coll.InsertOne(ctx, snap); err != nil {
		return frontpage.Errorf(frontpage.EINTERNAL, "failed to insert snapshot: %v", err)
	}

	return nil
}

// LatestSnapshot returns the most recently dated snapshot.
func (s *SnapshotService) LatestSnapshot(ctx context.Context) (*frontpage.Snapshot, error) {
	var snap frontpage.Snapshot

	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}})
	err := s.db.snapshots().FindOne(ctx, bson.D{}, opts).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, frontpage.Errorf(frontpage.ENOTFOUND, "no snapshot stored")
	}
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EINTERNAL, "failed to load snapshot: %v", err)
	}

	return &snap, nil
}
