package frontpage

import "time"

// Source is a news homepage the pipeline scrapes.
type Source struct {
	// Name is a short label used in logs and display output.
	// Falls back to the URL when empty.
	Name string

	// URL is the homepage address.
	URL string
}

// Cleaner selection names for Config.Cleaner.
const (
	// CleanerStrip removes a fixed set of non-content elements and keeps
	// the remaining visible text.
	CleanerStrip = "strip"

	// CleanerArticle extracts the main content using boilerplate removal.
	CleanerArticle = "article"

	// CleanerReadability extracts the main content using a readability
	// heuristic.
	CleanerReadability = "readability"
)

// Store driver names for StoreConfig.Driver.
const (
	StoreMongoDB = "mongodb"
	StoreSQLite  = "sqlite"
)

// Defaults applied by DefaultConfig.
const (
	DefaultModel           = "gemini-2.5-flash"
	DefaultPerspective     = "Indian"
	DefaultMaxContentChars = 55000
	DefaultFetchTimeout    = 15 * time.Second

	// DefaultUserAgent is the browser identifier sent with every fetch.
	// News sites commonly refuse requests with non-browser user agents.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/117.0.0.0 Safari/537.36"
)

// StoreConfig selects and configures the snapshot store.
type StoreConfig struct {
	// Driver is one of StoreMongoDB or StoreSQLite.
	Driver string

	// URI is the MongoDB connection string. Falls back to the MONGODB_URI
	// environment variable when empty.
	URI string

	// Database and Collection locate the snapshot document in MongoDB.
	Database   string
	Collection string

	// Path is the SQLite database file path.
	Path string
}

// Config holds the full pipeline configuration.
type Config struct {
	// Sources are the homepages to scrape, in prompt order.
	Sources []Source

	// Categories the extracted news is classified into.
	Categories []Category

	// Perspective biases article prioritization in the extraction prompt.
	Perspective string

	// Model is the Gemini model name used for extraction.
	Model string

	// UserAgent is sent with every homepage fetch.
	UserAgent string

	// FetchTimeout bounds each homepage fetch.
	FetchTimeout time.Duration

	// MaxContentChars caps the combined cleaned text sent to the model,
	// counted in characters.
	MaxContentChars int

	// Cleaner selects the HTML cleaning strategy.
	Cleaner string

	// Store selects and configures the snapshot store.
	Store StoreConfig

	// MirrorPath, when set, is a file path the snapshot news is mirrored
	// to as JSON after each successful run.
	MirrorPath string
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Sources: []Source{
			{Name: "Times of India", URL: "https://timesofindia.indiatimes.com"},
			{Name: "Sputnik India", URL: "https://sputniknews.in"},
			{Name: "Euronews", URL: "https://www.euronews.com/"},
		},
		Categories:      DefaultCategories,
		Perspective:     DefaultPerspective,
		Model:           DefaultModel,
		UserAgent:       DefaultUserAgent,
		FetchTimeout:    DefaultFetchTimeout,
		MaxContentChars: DefaultMaxContentChars,
		Cleaner:         CleanerStrip,
		Store: StoreConfig{
			Driver:     StoreMongoDB,
			Database:   "news_db",
			Collection: "daily_news",
		},
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return Errorf(EINVALID, "at least one source required")
	}
	seen := make(map[string]bool, len(c.Sources))
	for _, src := range c.Sources {
		if src.URL == "" {
			return Errorf(EINVALID, "source URL required")
		}
		if seen[src.URL] {
			return Errorf(EINVALID, "duplicate source URL %q", src.URL)
		}
		seen[src.URL] = true
	}

	if len(c.Categories) == 0 {
		return Errorf(EINVALID, "at least one category required")
	}
	seenCat := make(map[Category]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat == "" {
			return Errorf(EINVALID, "category name required")
		}
		if seenCat[cat] {
			return Errorf(EINVALID, "duplicate category %q", cat)
		}
		seenCat[cat] = true
	}

	if c.Model == "" {
		return Errorf(EINVALID, "model required")
	}
	if c.FetchTimeout <= 0 {
		return Errorf(EINVALID, "fetch timeout must be positive")
	}
	if c.MaxContentChars <= 0 {
		return Errorf(EINVALID, "max content chars must be positive")
	}

	switch c.Cleaner {
	case CleanerStrip, CleanerArticle, CleanerReadability:
	default:
		return Errorf(EINVALID, "unknown cleaner %q", c.Cleaner)
	}

	switch c.Store.Driver {
	case StoreMongoDB, StoreSQLite:
	default:
		return Errorf(EINVALID, "unknown store driver %q", c.Store.Driver)
	}

	return nil
}
