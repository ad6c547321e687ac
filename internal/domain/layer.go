package domain

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultThresholds is the fixed ascending intensity threshold sequence. The
// leading 0 means "no filter": its layer shows every sample.
var DefaultThresholds = []float64{0, 1, 5, 10}

// FormatThreshold renders a threshold without a trailing decimal point, so 5
// reads as "5" rather than "5.0" in labels.
func FormatThreshold(threshold float64) string {
	return strconv.FormatFloat(threshold, 'f', -1, 64)
}

// LayerLabel is the trace name for a threshold layer.
func LayerLabel(threshold float64) string {
	return fmt.Sprintf("aurora ≥ %s", FormatThreshold(threshold))
}

// OptionLabel is the user-facing control label for a threshold layer.
func OptionLabel(threshold float64) string {
	return fmt.Sprintf("Aurora ≥ %s", FormatThreshold(threshold))
}

// ThresholdLayer is a filtered view of a snapshot: every sample with
// intensity at or above Threshold. A layer with zero samples is legal and
// renderable.
type ThresholdLayer struct {
	Threshold float64
	Label     string
	Samples   []Sample

	// Visible participates in the document's exclusive-choice state; flip it
	// through MapDocument.ApplySelection, not directly.
	Visible bool

	// ShowColorbar is true on the first layer only. All layers share one
	// color mapping, so a single legend serves every selection.
	ShowColorbar bool
}

// ControlOption is one entry of the layer-switching control. Option order
// matches layer order and option i selects layer i.
type ControlOption struct {
	Label      string
	LayerIndex int
}

// MapDocument is the rendered artifact: ordered threshold layers plus the
// control that switches which one is visible.
type MapDocument struct {
	Layers  []ThresholdLayer
	Options []ControlOption

	// BaseTitle embeds both feed timestamps verbatim; TitleFor appends the
	// active-threshold suffix.
	BaseTitle string

	// Shared color range across all layers, [0, max intensity].
	ColorMin float64
	ColorMax float64

	MarkerSize int

	ObservationTime string
	ForecastTime    string
	GeneratedAt     time.Time
}

// ApplySelection makes layer i the single visible layer. Idempotent: applying
// the same selection twice leaves the same visibility vector.
func (d *MapDocument) ApplySelection(i int) error {
	if i < 0 || i >= len(d.Layers) {
		return fmt.Errorf("layer index %d out of range [0,%d)", i, len(d.Layers))
	}
	for j := range d.Layers {
		d.Layers[j].Visible = j == i
	}
	return nil
}

// VisibleIndex returns the index of the currently visible layer.
func (d *MapDocument) VisibleIndex() int {
	for i := range d.Layers {
		if d.Layers[i].Visible {
			return i
		}
	}
	return 0
}

// TitleFor is the displayed title when layer i is active: the base title plus
// a suffix naming the active threshold.
func (d *MapDocument) TitleFor(i int) string {
	if i < 0 || i >= len(d.Layers) {
		return d.BaseTitle
	}
	return fmt.Sprintf("%s<br><sup>Threshold: %s</sup>", d.BaseTitle, d.Layers[i].Label)
}
