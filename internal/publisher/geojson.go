package publisher

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/auroraops/aurora-map/internal/domain"
	geojson "github.com/paulmach/go.geojson"
)

// geoJSONDocument is a FeatureCollection with a metadata foreign member
// carrying the feed timestamps (RFC 7946 §6.1 permits foreign members).
type geoJSONDocument struct {
	Type     string             `json:"type"`
	Metadata geoJSONMetadata    `json:"metadata"`
	Features []*geojson.Feature `json:"features"`
}

type geoJSONMetadata struct {
	ObservationTime string  `json:"observation_time"`
	ForecastTime    string  `json:"forecast_time"`
	GeneratedAt     string  `json:"generated_at"`
	MaxIntensity    float64 `json:"max_intensity"`
}

// WriteGeoJSON publishes the unfiltered sample set (layer 0) as a GeoJSON
// FeatureCollection of Point features with an "aurora" property each.
// Failures wrap domain.ErrWrite.
func (p *Publisher) WriteGeoJSON(doc domain.MapDocument, path string) error {
	if len(doc.Layers) == 0 {
		return fmt.Errorf("%w: document has no layers", domain.ErrWrite)
	}

	samples := doc.Layers[0].Samples
	features := make([]*geojson.Feature, len(samples))
	for i, s := range samples {
		f := geojson.NewPointFeature([]float64{domain.NormalizeLon(s.Lon), s.Lat})
		f.SetProperty("aurora", s.Intensity)
		features[i] = f
	}

	out := geoJSONDocument{
		Type: "FeatureCollection",
		Metadata: geoJSONMetadata{
			ObservationTime: doc.ObservationTime,
			ForecastTime:    doc.ForecastTime,
			GeneratedAt:     doc.GeneratedAt.Format(time.RFC3339),
			MaxIntensity:    doc.ColorMax,
		},
		Features: features,
	}

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("%w: marshal geojson: %v", domain.ErrWrite, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWrite, err)
	}

	p.logger.Info("geojson written", "path", path, "features", len(features))
	return nil
}
