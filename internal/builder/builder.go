// Package builder constructs the multi-threshold map document from a
// forecast snapshot.
package builder

import (
	"fmt"
	"log/slog"

	"github.com/auroraops/aurora-map/internal/domain"
)

// Builder derives threshold layers and the layer-switching control from one
// snapshot.
type Builder struct {
	thresholds []float64
	logger     *slog.Logger
}

// New creates a Builder over the default threshold sequence.
func New(logger *slog.Logger) *Builder {
	return &Builder{
		thresholds: domain.DefaultThresholds,
		logger:     logger,
	}
}

// Build assembles the MapDocument:
//
//   - one layer per threshold, ascending, samples filtered at
//     intensity >= threshold
//   - one shared color range [0, max intensity] so layers stay comparable
//     when toggled
//   - the colorbar legend on the first layer only
//   - layer 0 visible, all others hidden
//   - one control option per layer, same order
//
// An empty snapshot fails with domain.ErrEmptyData because the color scale
// cannot be normalized against zero samples. Empty layers above the maximum
// intensity are valid.
func (b *Builder) Build(snapshot domain.ForecastSnapshot) (domain.MapDocument, error) {
	maxIntensity, ok := snapshot.MaxIntensity()
	if !ok {
		return domain.MapDocument{}, fmt.Errorf("%w: cannot normalize color scale", domain.ErrEmptyData)
	}

	layers := make([]domain.ThresholdLayer, len(b.thresholds))
	options := make([]domain.ControlOption, len(b.thresholds))
	for i, threshold := range b.thresholds {
		layers[i] = domain.ThresholdLayer{
			Threshold:    threshold,
			Label:        domain.LayerLabel(threshold),
			Samples:      domain.FilterSamples(snapshot.Samples, threshold),
			Visible:      i == 0,
			ShowColorbar: i == 0,
		}
		options[i] = domain.ControlOption{
			Label:      domain.OptionLabel(threshold),
			LayerIndex: i,
		}
		b.logger.Debug("layer built",
			"threshold", threshold,
			"samples", len(layers[i].Samples),
		)
	}

	doc := domain.MapDocument{
		Layers:          layers,
		Options:         options,
		BaseTitle:       baseTitle(snapshot),
		ColorMin:        0,
		ColorMax:        maxIntensity,
		MarkerSize:      2,
		ObservationTime: snapshot.ObservationTime,
		ForecastTime:    snapshot.ForecastTime,
		GeneratedAt:     domain.Now(),
	}

	b.logger.Info("map document built",
		"layers", len(doc.Layers),
		"max_intensity", maxIntensity,
	)
	return doc, nil
}

// baseTitle embeds both timestamp strings verbatim; an empty time renders as
// empty, not a placeholder.
func baseTitle(snapshot domain.ForecastSnapshot) string {
	return fmt.Sprintf("Aurora Forecast<br><sub>Observation: %s | Forecast: %s</sub>",
		snapshot.ObservationTime, snapshot.ForecastTime)
}
