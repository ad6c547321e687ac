package publisher

import (
	"fmt"
	"image/jpeg"
	"os"

	"github.com/auroraops/aurora-map/internal/domain"
	"github.com/fogleman/gg"
	"github.com/mazznoer/colorgrad"
)

const jpegQuality = 90

// WriteSnapshotImage rasterizes the currently visible layer to a JPEG of
// width*scale × height*scale pixels. Only the visible layer is drawn; the
// interactive control's other layers have no static representation. Samples
// are projected equirectangularly and colored on the document's shared
// Viridis range. Failures wrap domain.ErrRender and are non-fatal to the
// interactive output.
func (p *Publisher) WriteSnapshotImage(doc domain.MapDocument, path string, width, height, scale int) error {
	if width <= 0 || height <= 0 || scale <= 0 {
		return fmt.Errorf("%w: invalid dimensions %dx%d scale %d", domain.ErrRender, width, height, scale)
	}
	if len(doc.Layers) == 0 {
		return fmt.Errorf("%w: document has no layers", domain.ErrRender)
	}

	w := width * scale
	h := height * scale
	dc := gg.NewContext(w, h)

	// Night-sky background.
	dc.SetRGB(0.05, 0.07, 0.12)
	dc.Clear()

	drawGraticule(dc, w, h, scale)

	layer := doc.Layers[doc.VisibleIndex()]
	grad := colorgrad.Viridis()
	radius := float64(doc.MarkerSize * scale)

	for _, s := range layer.Samples {
		x := (domain.NormalizeLon(s.Lon) + 180) / 360 * float64(w)
		y := (90 - s.Lat) / 180 * float64(h)

		t := 0.0
		if doc.ColorMax > doc.ColorMin {
			t = (s.Intensity - doc.ColorMin) / (doc.ColorMax - doc.ColorMin)
		}
		dc.SetColor(grad.At(t))
		dc.DrawCircle(x, y, radius)
		dc.Fill()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRender, err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, dc.Image(), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("%w: encode jpeg: %v", domain.ErrRender, err)
	}

	p.logger.Info("snapshot image written",
		"path", path,
		"layer", layer.Label,
		"samples", len(layer.Samples),
		"pixels", fmt.Sprintf("%dx%d", w, h),
	)
	return nil
}

// drawGraticule draws faint meridians and parallels every 30° so the point
// cloud reads as a world map without bundled coastline geometry.
func drawGraticule(dc *gg.Context, w, h, scale int) {
	dc.SetRGBA(1, 1, 1, 0.08)
	dc.SetLineWidth(float64(scale))

	for lon := -180.0; lon <= 180; lon += 30 {
		x := (lon + 180) / 360 * float64(w)
		dc.DrawLine(x, 0, x, float64(h))
		dc.Stroke()
	}
	for lat := -90.0; lat <= 90; lat += 30 {
		y := (90 - lat) / 180 * float64(h)
		dc.DrawLine(0, y, float64(w), y)
		dc.Stroke()
	}
}
