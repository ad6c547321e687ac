// Command genmock generates a synthetic OVATION-shaped feed payload for
// development and test fixtures, so the pipeline can run without hitting the
// NOAA endpoint. The intensity field is a noisy Gaussian band around both
// auroral ovals on the full 360×181 grid.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -out data/mock/ovation_aurora_latest.json \
//	  -observation 2025-11-12T21:47:00Z \
//	  -forecast 2025-11-12T22:36:00Z
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/auroraops/aurora-map/internal/domain"
)

// ovalLatitude is the geomagnetic latitude where the synthetic oval peaks.
const ovalLatitude = 67.0

// feedPayload mirrors the OVATION JSON shape, including its spaced keys.
type feedPayload struct {
	ObservationTime string      `json:"Observation Time"`
	ForecastTime    string      `json:"Forecast Time"`
	Coordinates     [][]float64 `json:"coordinates"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	now := time.Now().UTC().Truncate(time.Minute)
	out := flag.String("out", "", "output path for the mock feed JSON")
	observation := flag.String("observation", now.Format(time.RFC3339), "Observation Time value")
	forecast := flag.String("forecast", now.Add(49*time.Minute).Format(time.RFC3339), "Forecast Time value")
	seed := flag.Int64("seed", 1, "random seed for reproducible fixtures")
	peak := flag.Float64("peak", 40, "peak aurora intensity inside the ovals")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	samples := generateGrid(rand.New(rand.NewSource(*seed)), *peak)

	payload := feedPayload{
		ObservationTime: *observation,
		ForecastTime:    *forecast,
		Coordinates:     make([][]float64, len(samples)),
	}
	for i, s := range samples {
		payload.Coordinates[i] = []float64{s.Lon, s.Lat, s.Intensity}
	}

	if err := writeJSON(*out, payload); err != nil {
		return fmt.Errorf("writing feed fixture: %w", err)
	}
	log.Printf("wrote feed fixture: %s (%d samples)", *out, len(samples))

	printStats(samples)
	return nil
}

// generateGrid walks the full 1° grid in feed order (lon 0..359, lat -90..90)
// and shapes the intensity as a Gaussian band around both auroral ovals, with
// a longitude modulation so the night side glows stronger.
func generateGrid(rng *rand.Rand, peak float64) []domain.Sample {
	samples := make([]domain.Sample, 0, 360*181)
	for lon := 0; lon < 360; lon++ {
		nightBoost := 0.6 + 0.4*math.Cos(float64(lon)/360*2*math.Pi)
		for lat := -90; lat <= 90; lat++ {
			dist := math.Abs(math.Abs(float64(lat)) - ovalLatitude)
			intensity := peak * nightBoost * math.Exp(-dist*dist/(2*36))
			intensity *= 0.85 + 0.3*rng.Float64()
			if intensity < 1 {
				intensity = 0
			}
			samples = append(samples, domain.Sample{
				Lon:       float64(lon),
				Lat:       float64(lat),
				Intensity: math.Round(intensity),
			})
		}
	}
	return samples
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

func printStats(samples []domain.Sample) {
	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(samples))

	snapshot := domain.ForecastSnapshot{Samples: samples}
	if maxVal, ok := snapshot.MaxIntensity(); ok {
		fmt.Printf("Max intensity: %g\n", maxVal)
	}
	for _, thr := range domain.DefaultThresholds {
		fmt.Printf("Samples at %s: %d\n",
			domain.LayerLabel(thr), len(domain.FilterSamples(samples, thr)))
	}
}
