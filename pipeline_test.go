package plotive

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/plotive/plotive/datasrc"
	"github.com/plotive/plotive/geom"
	"github.com/plotive/plotive/layout"
	"github.com/plotive/plotive/theme"
)

func sineData(n int) datasrc.Columns {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = 2 * math.Pi * float64(i) / float64(n-1)
		ys[i] = math.Sin(xs[i])
	}
	return datasrc.Columns{"x": xs, "y": ys}
}

func sineFigure(t *testing.T) *Figure {
	t.Helper()
	plot, err := NewPlot(
		[]Series{Line{X: ColRef("x"), Y: ColRef("y"), Name: "sin(x)"}},
		WithXAxis(Axis{Title: "x", TickSpec: "pimultiple"}),
		WithYAxis(Axis{Title: "sin(x)"}),
	)
	if err != nil {
		t.Fatalf("NewPlot: %v", err)
	}
	fig, err := NewFigure([]*Plot{plot},
		WithTitle("Sine"),
		WithLegend(LegendRight),
		WithSize(480, 360),
	)
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	return fig
}

func TestSineScenario(t *testing.T) {
	fig := sineFigure(t)
	data := sineData(500)

	bp, err := bindPlot(fig.plots[0], data)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	got := bp.xAxes[0].ticks
	want := []float64{0, math.Pi, 2 * math.Pi}
	if len(got) != len(want) {
		t.Fatalf("x ticks = %v, want multiples of pi %v", got, want)
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("tick %d = %v, want %v", i, got[i], want[i])
		}
	}

	th, err := fig.resolveTheme()
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	pass := &renderPass{
		fig: fig, th: th, res: theme.Resolver{Theme: th},
		colors: map[*boundPlot][]theme.RGBA{},
		plots:  []*boundPlot{bp},
	}
	if err := pass.resolveColors(bp); err != nil {
		t.Fatalf("colors: %v", err)
	}
	entries := pass.figureLegendEntries()
	count := 0
	for _, e := range entries {
		if e.label == "sin(x)" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("legend entry sin(x) appears %d times, want once", count)
	}

	path := filepath.Join(t.TempDir(), "sine.png")
	if err := fig.SavePNG(path, data); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("expected non-empty output file, err=%v", err)
	}
}

func TestTicksWithinDataRange(t *testing.T) {
	fig := sineFigure(t)
	bp, err := bindPlot(fig.plots[0], sineData(100))
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	for _, axes := range [][]boundAxis{bp.xAxes, bp.yAxes} {
		for _, ba := range axes {
			for _, tick := range ba.ticks {
				if tick < ba.dataMin-1e-9 || tick > ba.dataMax+1e-9 {
					t.Errorf("tick %v outside data range [%v, %v]", tick, ba.dataMin, ba.dataMax)
				}
			}
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	data := sineData(200)
	renderOnce := func() []byte {
		fig := sineFigure(t)
		sur, err := fig.rasterize(data)
		if err != nil {
			t.Fatalf("rasterize: %v", err)
		}
		var buf bytes.Buffer
		if err := sur.WritePNG(&buf); err != nil {
			t.Fatalf("WritePNG: %v", err)
		}
		return buf.Bytes()
	}
	if !bytes.Equal(renderOnce(), renderOnce()) {
		t.Error("identical figure and data produced different PNG bytes")
	}
}

func TestSavePNGSchemaErrorNoFile(t *testing.T) {
	plot, err := NewPlot([]Series{Line{X: ColRef("x"), Y: ColRef("nope")}})
	if err != nil {
		t.Fatalf("NewPlot: %v", err)
	}
	fig, err := NewFigure([]*Plot{plot})
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	path := filepath.Join(t.TempDir(), "broken.png")
	err = fig.SavePNG(path, datasrc.Columns{"x": {1, 2}})
	var se *datasrc.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *SchemaError", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("failed render left output file behind (stat: %v)", statErr)
	}
}

func TestSaveSVG(t *testing.T) {
	fig := sineFigure(t)
	path := filepath.Join(t.TempDir(), "sine.svg")
	if err := fig.SaveSVG(path, sineData(50)); err != nil {
		t.Fatalf("SaveSVG: %v", err)
	}
	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Contains(out, []byte("<svg")) || !bytes.Contains(out, []byte("</svg>")) {
		t.Error("output is not an SVG document")
	}
}

func TestLogAxisTicks(t *testing.T) {
	xs := make([]float64, 60)
	ys := make([]float64, 60)
	for i := range xs {
		xs[i] = math.Pow(10, 3*float64(i)/59)
		ys[i] = float64(i)
	}
	plot, err := NewPlot(
		[]Series{Line{X: ColRef("f"), Y: ColRef("v")}},
		WithXAxis(Axis{Scale: LogScale{Base: 10}}),
	)
	if err != nil {
		t.Fatalf("NewPlot: %v", err)
	}
	bp, err := bindPlot(plot, datasrc.Columns{"f": xs, "v": ys})
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	ticks := bp.xAxes[0].ticks
	if len(ticks) == 0 {
		t.Fatal("no ticks on log axis")
	}
	for _, tick := range ticks {
		exp := math.Log10(tick)
		if math.Abs(exp-math.Round(exp)) > 1e-9 {
			t.Errorf("tick %v is not a power of 10", tick)
		}
	}
}

func TestSharedScaleAlignment(t *testing.T) {
	plot, err := NewPlot(
		[]Series{
			Line{X: ColRef("x"), Y: ColRef("y")},
			Line{X: ColRef("x"), Y: ColRef("y2"), YAxis: RefID("right")},
		},
		WithYAxis(Axis{ID: "left"}),
		WithYAxis(Axis{ID: "right", Opposite: true, Scale: SharedScale{Ref: RefID("left")}}),
	)
	if err != nil {
		t.Fatalf("NewPlot: %v", err)
	}
	bp, err := bindPlot(plot, datasrc.Columns{
		"x": {0, 1, 2}, "y": {0, 10, 20}, "y2": {5, 5, 5},
	})
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	l, r := bp.yAxes[0], bp.yAxes[1]
	lMin, lMax := l.scale.Domain()
	rMin, rMax := r.scale.Domain()
	if lMin != rMin || lMax != rMax {
		t.Errorf("shared domains differ: [%v,%v] vs [%v,%v]", lMin, lMax, rMin, rMax)
	}
}

func TestRenderOverflowTinySurface(t *testing.T) {
	plot, err := NewPlot([]Series{Line{X: ColRef("x"), Y: ColRef("y")}})
	if err != nil {
		t.Fatalf("NewPlot: %v", err)
	}
	fig, err := NewFigure([]*Plot{plot}, WithSize(24, 18))
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	_, err = fig.rasterize(datasrc.Columns{"x": {1, 2}, "y": {3, 4}})
	var oe *layout.OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("err = %v, want *OverflowError", err)
	}
}

func TestMultiplotGrid(t *testing.T) {
	mk := func(name string) *Plot {
		p, err := NewPlot([]Series{Line{X: ColRef("x"), Y: ColRef("y"), Name: name}})
		if err != nil {
			t.Fatalf("NewPlot: %v", err)
		}
		return p
	}
	fig, err := NewFigure(
		[]*Plot{mk("a"), mk("b"), mk("c"), mk("d")},
		WithGrid(2, 2), WithSize(640, 480),
	)
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	if _, err := fig.rasterize(datasrc.Columns{"x": {0, 1, 2}, "y": {1, 4, 2}}); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestSeriesVariantsRender(t *testing.T) {
	plot, err := NewPlot([]Series{
		Line{X: ColRef("x"), Y: ColRef("y"), Interpolation: Spline, Name: "line"},
		Scatter{X: ColRef("x"), Y: ColRef("y"), Marker: MarkerDiamond, Name: "pts"},
		Bar{X: ColRef("x"), Y: ColRef("y"), Name: "bars", Style: Style{Color: "#88aa44"}},
		Histogram{X: ColRef("y"), Bins: 5, Name: "hist"},
	}, WithPlotLegend(LegendInTopRight))
	if err != nil {
		t.Fatalf("NewPlot: %v", err)
	}
	fig, err := NewFigure([]*Plot{plot}, WithTheme("mocha"))
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	if _, err := fig.rasterize(datasrc.Columns{
		"x": {0, 1, 2, 3, 4}, "y": {2, 5, 3, 8, 4},
	}); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestAnnotationsRender(t *testing.T) {
	plot, err := NewPlot(
		[]Series{Line{X: ColRef("x"), Y: ColRef("y")}},
		WithAnnotations(
			HLine(3).Styled(Style{Dash: []float64{4, 2}}),
			VLine(1).Beneath(),
			SlopeLine(geom.Pt(0, 0), 2),
			SegmentLine(geom.Pt(0, 1), geom.Pt(4, 5)),
			ArrowAnnotation{Origin: geom.Pt(2, 4), Delta: geom.Pt(1, -1)},
			LabelAnnotation{At: geom.Pt(2, 5), Text: "peak", Frame: true, Anchor: AnchorBottomLeft},
			LabelAnnotation{At: geom.Pt(3, 2), Text: "tilt", Angle: 45},
		),
	)
	if err != nil {
		t.Fatalf("NewPlot: %v", err)
	}
	fig, err := NewFigure([]*Plot{plot})
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	if _, err := fig.rasterize(datasrc.Columns{
		"x": {0, 1, 2, 3, 4}, "y": {1, 3, 6, 4, 2},
	}); err != nil {
		t.Fatalf("render: %v", err)
	}
}
