package observability

import (
	"bytes"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the Prometheus instruments for one pipeline run. They live on
// a private registry so a run can be scraped via the preview server or
// exported as a textfile for the node_exporter textfile collector.
type Metrics struct {
	registry *prometheus.Registry

	SamplesFetched prometheus.Gauge
	MaxIntensity   prometheus.Gauge
	LayerSamples   *prometheus.GaugeVec     // label: threshold
	StageDuration  *prometheus.HistogramVec // label: stage={fetch,build,publish}

	ArtifactsWritten *prometheus.CounterVec // label: kind={html,geojson,image}
	SnapshotFailures prometheus.Counter

	LastSuccessTimestamp prometheus.Gauge
}

// NewMetrics creates all run metrics on a fresh registry, alongside the
// standard Go and process collectors.
func NewMetrics() *Metrics {
	m := newMetrics()
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// NewMetricsForTesting creates Metrics without the runtime collectors, so
// textfile output in tests stays small and deterministic.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SamplesFetched: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aurora_map",
			Name:      "samples_fetched",
			Help:      "Samples in the fetched forecast snapshot.",
		}),
		MaxIntensity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aurora_map",
			Name:      "max_intensity",
			Help:      "Maximum aurora intensity across the snapshot.",
		}),
		LayerSamples: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "aurora_map",
			Name:      "layer_samples",
			Help:      "Samples per threshold layer.",
		}, []string{"threshold"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "aurora_map",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"stage"}),
		ArtifactsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aurora_map",
			Name:      "artifacts_written_total",
			Help:      "Artifacts persisted, by kind.",
		}, []string{"kind"}),
		SnapshotFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aurora_map",
			Name:      "snapshot_failures_total",
			Help:      "Raster snapshot failures (non-fatal).",
		}),
		LastSuccessTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aurora_map",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run.",
		}),
	}

	m.registry.MustRegister(
		m.SamplesFetched,
		m.MaxIntensity,
		m.LayerSamples,
		m.StageDuration,
		m.ArtifactsWritten,
		m.SnapshotFailures,
		m.LastSuccessTimestamp,
	)

	return m
}

// Gatherer exposes the private registry for the preview server's /metrics.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile persists the current metric state in the Prometheus text
// exposition format, for scraping batch runs via the node_exporter textfile
// collector.
func (m *Metrics) WriteTextfile(path string) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var buf bytes.Buffer
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, family); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
