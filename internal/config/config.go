// Package config loads runtime configuration from the environment and an
// optional YAML catalog file.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/workhours-go/pkg/workhours"
	"github.com/ukaji3/workhours-go/pkg/workhours/parser"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "WORKHOURS"

// Config is the runtime configuration.
type Config struct {
	Env           string   `envconfig:"ENV" default:"development"`
	LogLevel      string   `envconfig:"LOGLEVEL"`
	Output        string   `envconfig:"OUTPUT" default:"Calculated_Working_Hours.xlsx"`
	CatalogFile   string   `envconfig:"CATALOG_FILE"`
	HeaderMarkers []string `envconfig:"HEADER_MARKERS"`

	// Catalog is populated from CatalogFile when set.
	Catalog *Catalog `ignored:"true"`
}

// Catalog overrides the built-in shift table, header markers, and labels.
type Catalog struct {
	Shifts           map[string]parser.Shift `yaml:"shifts"`
	HeaderMarkers    []string                `yaml:"header_markers"`
	MinMarkerMatches int                     `yaml:"min_marker_matches"`
	Fields           map[string][]string     `yaml:"fields"`
}

// Load reads an optional .env file, then the environment, then the catalog file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if cfg.CatalogFile != "" {
		catalog, err := LoadCatalog(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		cfg.Catalog = catalog
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadCatalog reads a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return &c, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Output == "" {
		return errors.New("output file name must not be empty")
	}
	if c.Catalog == nil {
		return nil
	}
	for code := range c.Catalog.Shifts {
		if utf8.RuneCountInString(code) != 1 {
			return fmt.Errorf("shift code %q must be a single character", code)
		}
	}
	if c.Catalog.HeaderMarkers != nil && len(c.Catalog.HeaderMarkers) == 0 {
		return errors.New("header_markers must not be empty")
	}
	if c.Catalog.MinMarkerMatches < 0 {
		return errors.New("min_marker_matches must not be negative")
	}
	for field := range c.Catalog.Fields {
		if !knownField(parser.Field(field)) {
			return fmt.Errorf("unknown field %q", field)
		}
	}
	return nil
}

// Options builds extraction options, applying overrides over the defaults.
func (c *Config) Options() workhours.Options {
	opts := workhours.DefaultOptions()

	if len(c.HeaderMarkers) > 0 {
		opts.Header.Markers = c.HeaderMarkers
	}
	if c.Catalog == nil {
		return opts
	}

	if len(c.Catalog.Shifts) > 0 {
		opts.Shifts = parser.NewShiftCatalog(c.Catalog.Shifts)
	}
	if len(c.Catalog.HeaderMarkers) > 0 && len(c.HeaderMarkers) == 0 {
		opts.Header.Markers = c.Catalog.HeaderMarkers
	}
	if c.Catalog.MinMarkerMatches > 0 {
		opts.Header.MinMatches = c.Catalog.MinMarkerMatches
	}
	for field, labels := range c.Catalog.Fields {
		opts.Fields[parser.Field(field)] = labels
	}
	return opts
}

func knownField(f parser.Field) bool {
	for _, known := range parser.Fields {
		if f == known {
			return true
		}
	}
	return false
}
