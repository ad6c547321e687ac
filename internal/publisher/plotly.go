package publisher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/auroraops/aurora-map/internal/domain"
)

// plotlyCDN pins the charting script the page loads; everything else in the
// document is self-contained.
const plotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Plotly figure model. Only the fields this document uses, marshaled
// straight into the page.

type scatterGeoTrace struct {
	Type       string    `json:"type"`
	Mode       string    `json:"mode"`
	Name       string    `json:"name"`
	Lon        []float64 `json:"lon"`
	Lat        []float64 `json:"lat"`
	Visible    bool      `json:"visible"`
	ShowLegend bool      `json:"showlegend"`
	Marker     marker    `json:"marker"`
}

type marker struct {
	Size       int       `json:"size"`
	Color      []float64 `json:"color"`
	Colorscale string    `json:"colorscale"`
	CMin       float64   `json:"cmin"`
	CMax       float64   `json:"cmax"`
	Colorbar   *colorbar `json:"colorbar,omitempty"`
}

type colorbar struct {
	Title colorbarTitle `json:"title"`
}

type colorbarTitle struct {
	Text string `json:"text"`
}

type figureLayout struct {
	Title       layoutTitle  `json:"title"`
	Geo         geoLayout    `json:"geo"`
	UpdateMenus []updateMenu `json:"updatemenus"`
	Margin      layoutMargin `json:"margin"`
}

type layoutTitle struct {
	Text string `json:"text"`
}

type geoLayout struct {
	Projection     geoProjection `json:"projection"`
	ShowCoastlines bool          `json:"showcoastlines"`
	CoastlineColor string        `json:"coastlinecolor"`
	ShowLand       bool          `json:"showland"`
	LandColor      string        `json:"landcolor"`
	ShowCountries  bool          `json:"showcountries"`
}

type geoProjection struct {
	Type string `json:"type"`
}

type updateMenu struct {
	Type       string       `json:"type"`
	Direction  string       `json:"direction"`
	ShowActive bool         `json:"showactive"`
	Active     int          `json:"active"`
	X          float64      `json:"x"`
	Y          float64      `json:"y"`
	XAnchor    string       `json:"xanchor"`
	YAnchor    string       `json:"yanchor"`
	Buttons    []menuButton `json:"buttons"`
}

type menuButton struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// layoutMargin keeps the map flush with the page except for the title strip.
type layoutMargin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

func buildTraces(doc domain.MapDocument) []scatterGeoTrace {
	traces := make([]scatterGeoTrace, len(doc.Layers))
	for i, layer := range doc.Layers {
		lon := make([]float64, len(layer.Samples))
		lat := make([]float64, len(layer.Samples))
		intensity := make([]float64, len(layer.Samples))
		for j, s := range layer.Samples {
			lon[j] = s.Lon
			lat[j] = s.Lat
			intensity[j] = s.Intensity
		}

		m := marker{
			Size:       doc.MarkerSize,
			Color:      intensity,
			Colorscale: "Viridis",
			CMin:       doc.ColorMin,
			CMax:       doc.ColorMax,
		}
		if layer.ShowColorbar {
			m.Colorbar = &colorbar{Title: colorbarTitle{Text: "Aurora<br>Intensity"}}
		}

		traces[i] = scatterGeoTrace{
			Type:       "scattergeo",
			Mode:       "markers",
			Name:       layer.Label,
			Lon:        lon,
			Lat:        lat,
			Visible:    layer.Visible,
			ShowLegend: false,
			Marker:     m,
		}
	}
	return traces
}

func buildLayout(doc domain.MapDocument) figureLayout {
	buttons := make([]menuButton, len(doc.Options))
	for i, opt := range doc.Options {
		visible := make([]bool, len(doc.Layers))
		visible[opt.LayerIndex] = true
		buttons[i] = menuButton{
			Label:  opt.Label,
			Method: "update",
			Args: []any{
				map[string]any{"visible": visible},
				map[string]any{"title": doc.TitleFor(opt.LayerIndex)},
			},
		}
	}

	return figureLayout{
		Title: layoutTitle{Text: doc.BaseTitle},
		Geo: geoLayout{
			Projection:     geoProjection{Type: "natural earth"},
			ShowCoastlines: true,
			CoastlineColor: "gray",
			ShowLand:       true,
			LandColor:      "rgb(240,240,240)",
			ShowCountries:  true,
		},
		UpdateMenus: []updateMenu{{
			Type:       "dropdown",
			Direction:  "down",
			ShowActive: true,
			Active:     doc.VisibleIndex(),
			X:          0.02,
			Y:          0.95,
			XAnchor:    "left",
			YAnchor:    "top",
			Buttons:    buttons,
		}},
		Margin: layoutMargin{L: 0, R: 0, T: 80, B: 0},
	}
}

var pageTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="generated-at" content="{{.GeneratedAt}}">
<title>Aurora Forecast</title>
<script src="{{.ScriptURL}}" charset="utf-8"></script>
<style>html, body, #aurora-map { margin: 0; height: 100%; }</style>
</head>
<body>
<div id="aurora-map"></div>
<script>
Plotly.newPlot("aurora-map", {{.Data}}, {{.Layout}}, {"responsive": true});
</script>
</body>
</html>
`))

type pageContext struct {
	GeneratedAt string
	ScriptURL   string
	Data        template.JS
	Layout      template.JS
}

// WriteInteractive serializes the document to a standalone HTML page. The
// only external reference is the Plotly script from its CDN; the figure data
// and the threshold control are embedded. Failures wrap domain.ErrWrite.
func (p *Publisher) WriteInteractive(doc domain.MapDocument, path string) error {
	data, err := json.Marshal(buildTraces(doc))
	if err != nil {
		return fmt.Errorf("%w: marshal traces: %v", domain.ErrWrite, err)
	}
	layout, err := json.Marshal(buildLayout(doc))
	if err != nil {
		return fmt.Errorf("%w: marshal layout: %v", domain.ErrWrite, err)
	}

	var buf bytes.Buffer
	page := pageContext{
		GeneratedAt: doc.GeneratedAt.Format(time.RFC3339),
		ScriptURL:   plotlyCDN,
		Data:        template.JS(data),
		Layout:      template.JS(layout),
	}
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return fmt.Errorf("%w: render page: %v", domain.ErrWrite, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWrite, err)
	}

	p.logger.Info("interactive document written", "path", path, "layers", len(doc.Layers))
	return nil
}
