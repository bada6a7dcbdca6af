package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/newsdesk/frontpage"
)

// Compile-time interface verification.
var _ frontpage.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements frontpage.SnapshotService using SQLite.
// The news payload is stored as a JSON column; the table holds at most
// one row after any successful replace.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// ReplaceSnapshot deletes all stored snapshots and inserts snap as the only
// one, in a single transaction.
func (s *SnapshotService) ReplaceSnapshot(ctx context.Context, snap *frontpage.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	news, err := json.Marshal(snap.News)
	if err != nil {
		return frontpage.Errorf(frontpage.EINTERNAL, "failed to encode news: %v", err)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM snapshots"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, date, news)
		VALUES (?, ?, ?)
	`, uuid.New().String(), snap.Date.UTC().Format(time.RFC3339), string(news)); err != nil {
		return err
	}

	return tx.Commit()
}

// LatestSnapshot returns the most recently dated snapshot.
func (s *SnapshotService) LatestSnapshot(ctx context.Context) (*frontpage.Snapshot, error) {
	var date string
	var news string

	err := s.db.QueryRowContext(ctx, `
		SELECT date, news
		FROM snapshots
		ORDER BY date DESC
		LIMIT 1
	`).Scan(&date, &news)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, frontpage.Errorf(frontpage.ENOTFOUND, "no snapshot stored")
	}
	if err != nil {
		return nil, err
	}

	snap := &frontpage.Snapshot{}
	snap.Date, err = time.Parse(time.RFC3339, date)
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EINTERNAL, "failed to parse snapshot date: %v", err)
	}
	if err := json.Unmarshal([]byte(news), &snap.News); err != nil {
		return nil, frontpage.Errorf(frontpage.EINTERNAL, "failed to decode news: %v", err)
	}

	return snap, nil
}
