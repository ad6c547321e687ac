package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all settings for one run, populated from environment
// variables.
type Config struct {
	FeedURL      string        `envconfig:"AURORA_FEED_URL" default:"https://services.swpc.noaa.gov/json/ovation_aurora_latest.json"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`

	OutputDir string `envconfig:"OUTPUT_DIR" default:"docs"`

	SnapshotEnabled bool `envconfig:"SNAPSHOT_ENABLED" default:"true"`
	SnapshotWidth   int  `envconfig:"SNAPSHOT_WIDTH" default:"1600"`
	SnapshotHeight  int  `envconfig:"SNAPSHOT_HEIGHT" default:"900"`
	SnapshotScale   int  `envconfig:"SNAPSHOT_SCALE" default:"2"`

	GeoJSONEnabled bool `envconfig:"GEOJSON_ENABLED" default:"true"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// MetricsTextfile, when set, is where run metrics are written in the
	// Prometheus textfile-collector format. Empty disables the export.
	MetricsTextfile string `envconfig:"METRICS_TEXTFILE" default:""`

	// PreviewAddr, when set, keeps the process alive after the run serving
	// the output directory over HTTP. Empty keeps the run one-shot.
	PreviewAddr string `envconfig:"PREVIEW_ADDR" default:""`
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.FeedURL == "" {
		return nil, errors.New("AURORA_FEED_URL is required")
	}
	if cfg.FetchTimeout <= 0 {
		return nil, errors.New("invalid FETCH_TIMEOUT")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR is required")
	}
	if cfg.SnapshotWidth <= 0 || cfg.SnapshotHeight <= 0 {
		return nil, errors.New("SNAPSHOT_WIDTH and SNAPSHOT_HEIGHT must be positive")
	}
	if cfg.SnapshotScale <= 0 {
		return nil, errors.New("SNAPSHOT_SCALE must be positive")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (want json or text)", cfg.LogFormat)
	}

	return &cfg, nil
}

// HTMLPath is the interactive document location.
func (c *Config) HTMLPath() string {
	return filepath.Join(c.OutputDir, "index.html")
}

// ImagesDir holds the timestamped raster snapshots.
func (c *Config) ImagesDir() string {
	return filepath.Join(c.OutputDir, "images")
}

// DataDir holds the GeoJSON artifact.
func (c *Config) DataDir() string {
	return filepath.Join(c.OutputDir, "data")
}

// GeoJSONPath is the GeoJSON artifact location.
func (c *Config) GeoJSONPath() string {
	return filepath.Join(c.DataDir(), "aurora.geojson")
}
