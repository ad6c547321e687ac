package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	m := NewMetricsForTesting()
	m.SamplesFetched.Set(65160)
	m.LayerSamples.WithLabelValues("0").Set(65160)
	m.LayerSamples.WithLabelValues("10").Set(42)
	m.ArtifactsWritten.WithLabelValues("html").Inc()

	path := filepath.Join(t.TempDir(), "aurora.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "aurora_map_samples_fetched 65160")
	assert.Contains(t, out, `aurora_map_layer_samples{threshold="10"} 42`)
	assert.Contains(t, out, `aurora_map_artifacts_written_total{kind="html"} 1`)
}

func TestWriteTextfile_BadPath(t *testing.T) {
	m := NewMetricsForTesting()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "aurora.prom"))
	require.Error(t, err)
}

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	// Private registries mean repeated construction must not panic with
	// duplicate registration.
	assert.NotPanics(t, func() {
		_ = NewMetrics()
		_ = NewMetrics()
	})
}
