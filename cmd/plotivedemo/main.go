// Command plotivedemo renders a multi-panel demonstration figure.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand"
	"strings"

	"github.com/plotive/plotive"
	"github.com/plotive/plotive/datasrc"
	"github.com/plotive/plotive/geom"
)

func main() {
	var (
		width  = flag.Int("width", 1000, "figure width in pixels")
		height = flag.Int("height", 700, "figure height in pixels")
		output = flag.String("output", "demo.png", "output file (.png or .svg)")
		theme  = flag.String("theme", "light", "theme name (light, dark, latte, frappe, macchiato, mocha)")
		show   = flag.Bool("show", false, "open an interactive window instead of writing a file")
	)
	flag.Parse()

	src, fig, err := buildFigure(*width, *height, *theme)
	if err != nil {
		log.Fatalf("build figure: %v", err)
	}

	if *show {
		if err := fig.Show(src); err != nil {
			log.Fatalf("show: %v", err)
		}
		return
	}

	switch {
	case strings.HasSuffix(*output, ".svg"):
		err = fig.SaveSVG(*output, src)
	default:
		err = fig.SavePNG(*output, src)
	}
	if err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("demo saved to %s (%dx%d)", *output, *width, *height)
}

func buildFigure(w, h int, themeName string) (datasrc.Source, *plotive.Figure, error) {
	const n = 200
	rng := rand.New(rand.NewSource(42))

	xs := make([]float64, n)
	sin := make([]float64, n)
	cos := make([]float64, n)
	noisy := make([]float64, n)
	samples := make([]float64, n)
	for i := range xs {
		xs[i] = 2 * math.Pi * float64(i) / float64(n-1)
		sin[i] = math.Sin(xs[i])
		cos[i] = math.Cos(xs[i])
		noisy[i] = sin[i] + rng.NormFloat64()*0.15
		samples[i] = rng.NormFloat64()
	}
	src := datasrc.Columns{
		"x":       xs,
		"sin":     sin,
		"cos":     cos,
		"noisy":   noisy,
		"samples": samples,
	}

	waves, err := plotive.NewPlot(
		[]plotive.Series{
			plotive.Line{X: plotive.ColRef("x"), Y: plotive.ColRef("sin"), Name: "sin(x)"},
			plotive.Line{X: plotive.ColRef("x"), Y: plotive.ColRef("cos"), Name: "cos(x)",
				Style: plotive.Style{Dash: []float64{6, 3}}},
			plotive.Scatter{X: plotive.ColRef("x"), Y: plotive.ColRef("noisy"), Name: "sampled",
				Marker: plotive.MarkerCircle, Size: 2.5},
		},
		plotive.WithPlotTitle("Waveforms"),
		plotive.WithXAxis(plotive.Axis{Title: "x", TickSpec: "pimultiple"}),
		plotive.WithYAxis(plotive.Axis{Title: "amplitude", Grid: plotive.GridOn}),
		plotive.WithAnnotations(
			plotive.HLine(0).Beneath(),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	hist, err := plotive.NewPlot(
		[]plotive.Series{
			plotive.Histogram{X: plotive.ColRef("samples"), Bins: 20, Name: "samples"},
		},
		plotive.WithPlotTitle("Distribution"),
		plotive.WithXAxis(plotive.Axis{Title: "value"}),
		plotive.WithYAxis(plotive.Axis{Title: "count"}),
		plotive.WithAnnotations(
			plotive.LabelAnnotation{
				At:     geom.Pt(1.5, 20),
				Text:   "N(0, 1)",
				Anchor: plotive.AnchorTopLeft,
				Frame:  true,
			},
		),
	)
	if err != nil {
		return nil, nil, err
	}

	fig, err := plotive.NewFigure(
		[]*plotive.Plot{waves, hist},
		plotive.WithTitle("plotive demo"),
		plotive.WithSize(float64(w), float64(h)),
		plotive.WithTheme(themeName),
		plotive.WithGrid(2, 1),
		plotive.WithLegend(plotive.LegendRight),
	)
	if err != nil {
		return nil, nil, err
	}
	return src, fig, nil
}
