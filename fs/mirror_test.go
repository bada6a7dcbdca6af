package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/newsdesk/frontpage"
	"github.com/newsdesk/frontpage/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirror_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ frontpage.SnapshotWriter = &fs.Mirror{}
}

func TestMirror_WriteSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("writes indented news payload", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "news.json")
		m := fs.NewMirror(path)

		snap := testSnapshot()

		err := m.WriteSnapshot(context.Background(), snap)

		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		// Only the news payload is mirrored, without the snapshot date.
		var got frontpage.CategorizedNews
		require.NoError(t, json.Unmarshal(content, &got))
		assert.Equal(t, snap.News, got)

		var top map[string]any
		require.NoError(t, json.Unmarshal(content, &top))
		assert.NotContains(t, top, "date")

		assert.Contains(t, string(content), "    \"headline\"")
		assert.True(t, strings.HasSuffix(string(content), "\n"))
	})

	t.Run("preserves non-ASCII text", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "news.json")
		m := fs.NewMirror(path)

		snap := &frontpage.Snapshot{
			Date: time.Date(2025, 10, 14, 6, 0, 0, 0, time.UTC),
			News: frontpage.CategorizedNews{
				"World": {
					{Headline: "भारत में आम चुनाव की घोषणा", Summary: "चुनाव आयोग ने तारीखें जारी कीं।"},
				},
			},
		}

		err := m.WriteSnapshot(context.Background(), snap)

		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "भारत में आम चुनाव की घोषणा")
		assert.NotContains(t, string(content), `\u`)
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "public", "data", "news.json")
		m := fs.NewMirror(path)

		err := m.WriteSnapshot(context.Background(), testSnapshot())

		require.NoError(t, err)

		_, err = os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("skips rewrite when payload unchanged", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "news.json")
		m := fs.NewMirror(path)

		first := testSnapshot()
		require.NoError(t, m.WriteSnapshot(context.Background(), first))

		// Backdate the file so a rewrite would be visible in the mtime.
		past := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, os.Chtimes(path, past, past))

		// Same news on a later date: only the payload drives the rewrite.
		second := testSnapshot()
		second.Date = first.Date.Add(24 * time.Hour)
		require.NoError(t, m.WriteSnapshot(context.Background(), second))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.ModTime().Equal(past), "unchanged payload should not rewrite the file")

		// A changed payload does rewrite.
		third := testSnapshot()
		third.News["World"] = append(third.News["World"], frontpage.Article{Headline: "New development"})
		require.NoError(t, m.WriteSnapshot(context.Background(), third))

		info, err = os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.ModTime().After(past))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := fs.NewMirror(filepath.Join(dir, "news.json"))

		require.NoError(t, m.WriteSnapshot(context.Background(), testSnapshot()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "news.json", entries[0].Name())
	})

	t.Run("validates snapshot", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "news.json")
		m := fs.NewMirror(path)

		err := m.WriteSnapshot(context.Background(), &frontpage.Snapshot{News: frontpage.CategorizedNews{}})

		require.Error(t, err)
		assert.Equal(t, frontpage.EINVALID, frontpage.ErrorCode(err))

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func testSnapshot() *frontpage.Snapshot {
	return &frontpage.Snapshot{
		Date: time.Date(2025, 10, 14, 6, 0, 0, 0, time.UTC),
		News: frontpage.CategorizedNews{
			"World": {
				{
					Headline:  "Summit ends with joint statement",
					Summary:   "Leaders agreed on a framework for trade talks.",
					KeyPoints: []string{"Framework agreed", "Talks resume in March"},
				},
			},
			"Sports": {},
		},
	}
}
