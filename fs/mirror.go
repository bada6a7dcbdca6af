// Package fs provides file-based output for news snapshots.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/newsdesk/frontpage"
)

// Ensure Mirror implements frontpage.SnapshotWriter at compile time.
var _ frontpage.SnapshotWriter = (*Mirror)(nil)

// Mirror writes the snapshot news payload to a JSON file for a static site
// to serve. Writes are atomic (temp file + rename) and skipped when the
// payload is unchanged, so the mirrored file keeps its modification time
// between news updates.
type Mirror struct {
	path string
}

// NewMirror creates a new Mirror that writes to the given path.
func NewMirror(path string) *Mirror {
	return &Mirror{path: path}
}

// WriteSnapshot encodes snap.News as indented JSON and writes it to the
// mirror path. Only the news payload is mirrored; the date lives in the
// snapshot store.
func (m *Mirror) WriteSnapshot(ctx context.Context, snap *frontpage.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	data, err := encodeNews(snap.News)
	if err != nil {
		return err
	}

	if unchanged(m.path, data) {
		return nil
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(m.path)+".tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, m.path)
}

// encodeNews serializes the news with four-space indentation, keeping
// non-ASCII text readable in the output file.
func encodeNews(news frontpage.CategorizedNews) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(news); err != nil {
		return nil, frontpage.Errorf(frontpage.EINTERNAL, "failed to encode news: %v", err)
	}
	return buf.Bytes(), nil
}

// unchanged reports whether the file at path already holds data.
func unchanged(path string, data []byte) bool {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return xxhash.Sum64(existing) == xxhash.Sum64(data)
}
