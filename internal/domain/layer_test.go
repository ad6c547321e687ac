package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() MapDocument {
	layers := make([]ThresholdLayer, len(DefaultThresholds))
	for i, thr := range DefaultThresholds {
		layers[i] = ThresholdLayer{
			Threshold: thr,
			Label:     LayerLabel(thr),
			Visible:   i == 0,
		}
	}
	return MapDocument{Layers: layers, BaseTitle: "Aurora Forecast"}
}

func visibility(d MapDocument) []bool {
	v := make([]bool, len(d.Layers))
	for i := range d.Layers {
		v[i] = d.Layers[i].Visible
	}
	return v
}

func TestApplySelection(t *testing.T) {
	t.Run("switches the visible layer", func(t *testing.T) {
		doc := testDocument()
		require.NoError(t, doc.ApplySelection(2))
		assert.Equal(t, []bool{false, false, true, false}, visibility(doc))
		assert.Equal(t, 2, doc.VisibleIndex())
	})

	t.Run("idempotent", func(t *testing.T) {
		doc := testDocument()
		require.NoError(t, doc.ApplySelection(1))
		once := visibility(doc)
		require.NoError(t, doc.ApplySelection(1))
		assert.Equal(t, once, visibility(doc))
	})

	t.Run("exactly one layer visible after any sequence", func(t *testing.T) {
		doc := testDocument()
		for _, i := range []int{3, 0, 2, 2, 1} {
			require.NoError(t, doc.ApplySelection(i))
			count := 0
			for _, vis := range visibility(doc) {
				if vis {
					count++
				}
			}
			assert.Equal(t, 1, count)
			assert.Equal(t, i, doc.VisibleIndex())
		}
	})

	t.Run("out of range", func(t *testing.T) {
		doc := testDocument()
		assert.Error(t, doc.ApplySelection(-1))
		assert.Error(t, doc.ApplySelection(len(doc.Layers)))
		// Failed selection must not disturb the state.
		assert.Equal(t, []bool{true, false, false, false}, visibility(doc))
	})
}

func TestTitleFor(t *testing.T) {
	doc := testDocument()
	assert.Equal(t, "Aurora Forecast<br><sup>Threshold: aurora ≥ 5</sup>", doc.TitleFor(2))
	assert.Equal(t, "Aurora Forecast", doc.TitleFor(-1))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "aurora ≥ 0", LayerLabel(0))
	assert.Equal(t, "Aurora ≥ 10", OptionLabel(10))
	assert.Equal(t, "1.5", FormatThreshold(1.5))
}
