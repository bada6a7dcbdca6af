package main_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/newsdesk/frontpage"
	main "github.com/newsdesk/frontpage/cmd/frontpage"
	"github.com/newsdesk/frontpage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// --help should return nil (success) and show commands
	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	expectedCommands := []string{"run", "preview", "latest"}
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}

	// Verify Kong-style formatting (Kong has "Usage:" prefix and "Flags:" section)
	assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
	assert.Contains(t, helpOutput, "Flags:", "Help should have Kong-style Flags section")
}

func TestMain_Run_NoArgsShowsHelpAndErrors(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestMain_Run_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"frobnicate"}, stdout, stderr)

	require.Error(t, err)
}

func TestMain_Run_InvalidConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "frontpage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cleaner: bleach\n"), 0644))

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--config", path, "latest"}, stdout, stderr)

	require.Error(t, err)
	assert.Equal(t, frontpage.EINVALID, frontpage.ErrorCode(err))
}

func TestMain_Run_LatestWithSQLiteStore(t *testing.T) {
	t.Parallel()

	t.Run("empty store", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		configPath := writeSQLiteConfig(t, dir)

		m := main.NewMain()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--config", configPath, "latest"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No snapshot stored yet.")
	})

	t.Run("renders a stored snapshot through the full wiring", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		configPath := writeSQLiteConfig(t, dir)

		// Seed the store directly, then read it back through the CLI.
		db := sqlite.NewDB(filepath.Join(dir, "news.db"))
		require.NoError(t, db.Open())
		svc := sqlite.NewSnapshotService(db)
		require.NoError(t, svc.ReplaceSnapshot(context.Background(), &frontpage.Snapshot{
			Date: time.Date(2025, 10, 14, 6, 0, 0, 0, time.UTC),
			News: frontpage.CategorizedNews{
				"World": {{Headline: "Summit ends with joint statement"}},
			},
		}))
		require.NoError(t, db.Close())

		m := main.NewMain()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--config", configPath, "latest"}, stdout, stderr)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "News for 2025-10-14")
		assert.Contains(t, output, "Summit ends with joint statement")
	})
}

// writeSQLiteConfig writes a config file selecting a SQLite store in dir.
func writeSQLiteConfig(t *testing.T, dir string) string {
	t.Helper()

	content := fmt.Sprintf("store:\n  driver: sqlite\n  path: %s\n", filepath.Join(dir, "news.db"))
	path := filepath.Join(dir, "frontpage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
