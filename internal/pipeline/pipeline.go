// Package pipeline runs the single-pass fetch → build → publish sequence.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/auroraops/aurora-map/internal/config"
	"github.com/auroraops/aurora-map/internal/domain"
	"github.com/auroraops/aurora-map/internal/observability"
	"github.com/auroraops/aurora-map/internal/publisher"
)

// Fetcher retrieves one forecast snapshot from the feed.
type Fetcher interface {
	Fetch(ctx context.Context) (domain.ForecastSnapshot, error)
}

// Builder constructs the layered map document from a snapshot.
type Builder interface {
	Build(snapshot domain.ForecastSnapshot) (domain.MapDocument, error)
}

// Publisher persists rendered artifacts.
type Publisher interface {
	WriteInteractive(doc domain.MapDocument, path string) error
	WriteSnapshotImage(doc domain.MapDocument, path string, width, height, scale int) error
	WriteGeoJSON(doc domain.MapDocument, path string) error
}

// Result reports the artifact paths actually written. ImagePath and
// GeoJSONPath are empty when the corresponding output was disabled or, for
// the image, when rendering failed non-fatally.
type Result struct {
	HTMLPath    string
	GeoJSONPath string
	ImagePath   string
}

// Pipeline wires the three stages together with observability.
type Pipeline struct {
	fetcher   Fetcher
	builder   Builder
	publisher Publisher
	cfg       *config.Config
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline.
func New(f Fetcher, b Builder, p Publisher, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		fetcher:   f,
		builder:   b,
		publisher: p,
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run executes exactly one fetch, one build, and the configured writes, in
// that order. Fetch, build, and interactive/GeoJSON write failures are fatal
// and returned; a raster snapshot failure is logged and skipped because the
// two outputs are independent.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	if err := p.ensureDirs(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	snapshot, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetch stage: %w", err)
	}
	p.metrics.StageDuration.WithLabelValues("fetch").Observe(time.Since(start).Seconds())
	p.metrics.SamplesFetched.Set(float64(len(snapshot.Samples)))

	start = time.Now()
	doc, err := p.builder.Build(snapshot)
	if err != nil {
		return Result{}, fmt.Errorf("build stage: %w", err)
	}
	p.metrics.StageDuration.WithLabelValues("build").Observe(time.Since(start).Seconds())
	p.metrics.MaxIntensity.Set(doc.ColorMax)
	for _, layer := range doc.Layers {
		p.metrics.LayerSamples.WithLabelValues(domain.FormatThreshold(layer.Threshold)).Set(float64(len(layer.Samples)))
	}

	start = time.Now()
	result := Result{HTMLPath: p.cfg.HTMLPath()}
	if err := p.publisher.WriteInteractive(doc, result.HTMLPath); err != nil {
		return Result{}, fmt.Errorf("publish stage: %w", err)
	}
	p.metrics.ArtifactsWritten.WithLabelValues("html").Inc()

	if p.cfg.GeoJSONEnabled {
		result.GeoJSONPath = p.cfg.GeoJSONPath()
		if err := p.publisher.WriteGeoJSON(doc, result.GeoJSONPath); err != nil {
			return Result{}, fmt.Errorf("publish stage: %w", err)
		}
		p.metrics.ArtifactsWritten.WithLabelValues("geojson").Inc()
	}

	if p.cfg.SnapshotEnabled {
		imagePath := publisher.SnapshotImagePath(p.cfg.ImagesDir(), doc)
		err := p.publisher.WriteSnapshotImage(doc, imagePath,
			p.cfg.SnapshotWidth, p.cfg.SnapshotHeight, p.cfg.SnapshotScale)
		if err != nil {
			// Non-fatal: the interactive document already stands on its own.
			p.logger.Warn("snapshot render failed, skipping", "error", err, "path", imagePath)
			p.metrics.SnapshotFailures.Inc()
		} else {
			result.ImagePath = imagePath
			p.metrics.ArtifactsWritten.WithLabelValues("image").Inc()
		}
	}
	p.metrics.StageDuration.WithLabelValues("publish").Observe(time.Since(start).Seconds())
	p.metrics.LastSuccessTimestamp.Set(float64(domain.Now().Unix()))

	p.logger.Info("run complete",
		"html", result.HTMLPath,
		"geojson", result.GeoJSONPath,
		"image", result.ImagePath,
	)
	return result, nil
}

// ensureDirs creates the output directories; idempotent, no error when they
// already exist.
func (p *Pipeline) ensureDirs() error {
	dirs := []string{p.cfg.OutputDir}
	if p.cfg.GeoJSONEnabled {
		dirs = append(dirs, p.cfg.DataDir())
	}
	if p.cfg.SnapshotEnabled {
		dirs = append(dirs, p.cfg.ImagesDir())
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %v", domain.ErrWrite, dir, err)
		}
	}
	return nil
}
