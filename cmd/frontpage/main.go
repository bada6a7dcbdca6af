package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/newsdesk/frontpage"
	"github.com/newsdesk/frontpage/fs"
	"github.com/newsdesk/frontpage/gemini"
	"github.com/newsdesk/frontpage/goquery"
	fphttp "github.com/newsdesk/frontpage/http"
	"github.com/newsdesk/frontpage/mongo"
	"github.com/newsdesk/frontpage/readability"
	fpslog "github.com/newsdesk/frontpage/slog"
	"github.com/newsdesk/frontpage/sqlite"
	"github.com/newsdesk/frontpage/trafilatura"
	"github.com/newsdesk/frontpage/yaml"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config used for the run. Defaults can be replaced before calling
	// Run(); a --config file overrides them.
	Config frontpage.Config

	// MongoDB connection when the mongodb store driver is selected.
	MongoDB *mongo.DB

	// SQLite database when the sqlite store driver is selected.
	SQLiteDB *sqlite.DB

	// Snapshot store for end-to-end testing.
	Snapshots frontpage.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config: frontpage.DefaultConfig(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close(ctx context.Context) error {
	if m.MongoDB != nil {
		return m.MongoDB.Close(ctx)
	}
	if m.SQLiteDB != nil {
		return m.SQLiteDB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("frontpage"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'frontpage --help' to see available commands")
	}
	if arg := args[0]; arg == "help" || arg == "--help" || arg == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Resolve configuration before wiring services
	if cli.Config != "" {
		cfg, err := yaml.LoadConfig(cli.Config)
		if err != nil {
			return err
		}
		m.Config = cfg
	}
	deps.Config = m.Config

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel(cli.Verbose),
	}))
	deps.Logger = logger

	cmd := kongCtx.Command()

	// Fetching and cleaning are needed by run and preview
	if cmd == "run" || cmd == "preview" {
		fetcher := fphttp.NewFetcher(
			fphttp.WithTimeout(m.Config.FetchTimeout),
			fphttp.WithUserAgent(m.Config.UserAgent),
		)
		deps.Fetcher = fpslog.NewLoggingFetcher(fetcher, logger)
		deps.Cleaner = newCleaner(m.Config.Cleaner)
	}

	// The snapshot store is needed by run and latest. A store that cannot
	// be reached at startup fails the whole invocation.
	if cmd == "run" || cmd == "latest" {
		store, err := m.openStore(ctx, stderr)
		if err != nil {
			return err
		}
		defer m.Close(ctx)
		m.Snapshots = store
		deps.Snapshots = fpslog.NewLoggingSnapshotService(store, logger)
	}

	// Wire the model client only for run
	if cmd == "run" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		extractor := gemini.NewExtractor(client, m.Config.Model, m.Config.Categories, m.Config.Perspective)
		deps.Extractor = fpslog.NewLoggingExtractor(extractor, logger)

		if m.Config.MirrorPath != "" {
			deps.Mirror = fpslog.NewLoggingSnapshotWriter(fs.NewMirror(m.Config.MirrorPath), logger)
		}
	}

	return kongCtx.Run(deps)
}

// openStore opens the configured snapshot store and verifies the connection.
func (m *Main) openStore(ctx context.Context, stderr io.Writer) (frontpage.SnapshotService, error) {
	switch m.Config.Store.Driver {
	case frontpage.StoreSQLite:
		path := m.sqlitePath()
		m.SQLiteDB = sqlite.NewDB(path)
		if err := m.SQLiteDB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set FRONTPAGE_DB or store.path to use a different database path")
			return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		return sqlite.NewSnapshotService(m.SQLiteDB), nil
	default:
		uri := m.Config.Store.URI
		if uri == "" {
			uri = os.Getenv("MONGODB_URI")
		}
		m.MongoDB = mongo.NewDB(uri, m.Config.Store.Database, m.Config.Store.Collection)
		if err := m.MongoDB.Open(ctx); err != nil {
			fmt.Fprintln(stderr, "Hint: Set MONGODB_URI or store.uri in the config file")
			return nil, err
		}
		return mongo.NewSnapshotService(m.MongoDB), nil
	}
}

// sqlitePath resolves the SQLite database path from the config, the
// FRONTPAGE_DB environment variable, or the default under the home directory.
func (m *Main) sqlitePath() string {
	if m.Config.Store.Path != "" {
		return m.Config.Store.Path
	}
	if path := os.Getenv("FRONTPAGE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "frontpage.db"
	}
	dir := filepath.Join(home, ".frontpage")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "frontpage.db")
}

// newCleaner selects the cleaning strategy by its config name.
func newCleaner(name string) frontpage.Cleaner {
	switch name {
	case frontpage.CleanerArticle:
		return trafilatura.NewCleaner()
	case frontpage.CleanerReadability:
		return readability.NewCleaner()
	default:
		return goquery.NewCleaner()
	}
}

// logLevel resolves the log level from the LOG_LEVEL environment variable
// and the --verbose flag. The default hides routine operation logs.
func logLevel(verbose bool) slog.Level {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose && level > slog.LevelInfo {
		level = slog.LevelInfo
	}
	return level
}
