// Package publisher serializes a map document into its published artifacts:
// the interactive HTML page, the optional raster snapshot, and the GeoJSON
// data file.
package publisher

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/auroraops/aurora-map/internal/domain"
)

// Publisher writes MapDocument artifacts to the filesystem. The caller is
// expected to have created parent directories.
type Publisher struct {
	logger *slog.Logger
}

// New creates a Publisher.
func New(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger}
}

// SnapshotImagePath derives the raster filename inside imagesDir from the
// document's feed timestamps, e.g. "aurora_obs_20251112_214700__fc_unknown.jpg".
func SnapshotImagePath(imagesDir string, doc domain.MapDocument) string {
	stem := domain.SnapshotStem(doc.ObservationTime, doc.ForecastTime)
	return filepath.Join(imagesDir, fmt.Sprintf("aurora_%s.jpg", stem))
}
