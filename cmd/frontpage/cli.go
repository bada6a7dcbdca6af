package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/newsdesk/frontpage"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    frontpage.Config
	Fetcher   frontpage.Fetcher
	Cleaner   frontpage.Cleaner
	Extractor frontpage.Extractor
	Snapshots frontpage.SnapshotService
	Mirror    frontpage.SnapshotWriter
	Logger    *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to a YAML config file" type:"path"`
	Verbose bool   `short:"v" help:"Enable info-level logging"`

	Run     RunCmd     `cmd:"" help:"Scrape the sources, extract categorized news, and store the snapshot"`
	Preview PreviewCmd `cmd:"" help:"Fetch and clean the sources without calling the model"`
	Latest  LatestCmd  `cmd:"" help:"Print the stored snapshot"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct{}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Source string `help:"Only preview the source with this name or URL"`
	Full   bool   `help:"Print the full cleaned text"`
}

// LatestCmd is the "latest" subcommand.
type LatestCmd struct {
	JSON bool `help:"Print the raw news payload as JSON"`
}
