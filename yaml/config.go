// Package yaml loads pipeline configuration from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"time"

	"github.com/newsdesk/frontpage"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors frontpage.Config with YAML-friendly field types.
// Durations are plain seconds so config files stay free of unit suffixes.
type fileConfig struct {
	Sources             []sourceConfig `yaml:"sources"`
	Categories          []string       `yaml:"categories"`
	Perspective         string         `yaml:"perspective"`
	Model               string         `yaml:"model"`
	UserAgent           string         `yaml:"user_agent"`
	FetchTimeoutSeconds int            `yaml:"fetch_timeout_seconds"`
	MaxContentChars     int            `yaml:"max_content_chars"`
	Cleaner             string         `yaml:"cleaner"`
	Store               storeConfig    `yaml:"store"`
	MirrorPath          string         `yaml:"mirror_path"`
}

type sourceConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type storeConfig struct {
	Driver     string `yaml:"driver"`
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
	Path       string `yaml:"path"`
}

// LoadConfig reads a YAML config file and overlays it on the default
// configuration. Fields absent from the file keep their default values, so
// a file can set just the sources, or just the store, and leave the rest
// alone. Unknown fields are rejected to catch typos.
func LoadConfig(path string) (frontpage.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return frontpage.Config{}, frontpage.Errorf(frontpage.ENOTFOUND, "config file %q not found", path)
		}
		return frontpage.Config{}, err
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return frontpage.Config{}, frontpage.Errorf(frontpage.EINVALID, "invalid config file %q: %v", path, err)
	}

	cfg := frontpage.DefaultConfig()
	fc.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return frontpage.Config{}, err
	}
	return cfg, nil
}

func (fc *fileConfig) apply(cfg *frontpage.Config) {
	if len(fc.Sources) > 0 {
		sources := make([]frontpage.Source, 0, len(fc.Sources))
		for _, s := range fc.Sources {
			sources = append(sources, frontpage.Source{Name: s.Name, URL: s.URL})
		}
		cfg.Sources = sources
	}
	if len(fc.Categories) > 0 {
		categories := make([]frontpage.Category, 0, len(fc.Categories))
		for _, c := range fc.Categories {
			categories = append(categories, frontpage.Category(c))
		}
		cfg.Categories = categories
	}
	if fc.Perspective != "" {
		cfg.Perspective = fc.Perspective
	}
	if fc.Model != "" {
		cfg.Model = fc.Model
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.FetchTimeoutSeconds > 0 {
		cfg.FetchTimeout = time.Duration(fc.FetchTimeoutSeconds) * time.Second
	}
	if fc.MaxContentChars > 0 {
		cfg.MaxContentChars = fc.MaxContentChars
	}
	if fc.Cleaner != "" {
		cfg.Cleaner = fc.Cleaner
	}
	if fc.MirrorPath != "" {
		cfg.MirrorPath = fc.MirrorPath
	}
	fc.Store.apply(&cfg.Store)
}

func (sc *storeConfig) apply(store *frontpage.StoreConfig) {
	if sc.Driver != "" {
		store.Driver = sc.Driver
	}
	if sc.URI != "" {
		store.URI = sc.URI
	}
	if sc.Database != "" {
		store.Database = sc.Database
	}
	if sc.Collection != "" {
		store.Collection = sc.Collection
	}
	if sc.Path != "" {
		store.Path = sc.Path
	}
}
