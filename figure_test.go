package plotive

import (
	"errors"
	"testing"

	"github.com/plotive/plotive/datasrc"
)

func simplePlot(t *testing.T) *Plot {
	t.Helper()
	p, err := NewPlot([]Series{
		Line{X: ColRef("x"), Y: ColRef("y"), Name: "y(x)"},
	})
	if err != nil {
		t.Fatalf("NewPlot: %v", err)
	}
	return p
}

func TestNewFigureStructural(t *testing.T) {
	if _, err := NewFigure(nil); !errors.Is(err, ErrNoPlots) {
		t.Errorf("empty figure: err = %v, want ErrNoPlots", err)
	}
	if _, err := NewPlot(nil); !errors.Is(err, ErrNoSeries) {
		t.Errorf("empty plot: err = %v, want ErrNoSeries", err)
	}
}

func TestNewFigureUnknownTheme(t *testing.T) {
	_, err := NewFigure([]*Plot{simplePlot(t)}, WithTheme("no-such-theme"))
	if err == nil {
		t.Fatal("expected unknown theme to fail at construction")
	}
}

func TestNewFigureGridTooSmall(t *testing.T) {
	p1, p2 := simplePlot(t), simplePlot(t)
	_, err := NewFigure([]*Plot{p1, p2}, WithGrid(1, 1))
	if err == nil {
		t.Fatal("expected two plots in a 1x1 grid to fail")
	}
}

func TestAxisRefValidation(t *testing.T) {
	_, err := NewPlot([]Series{
		Line{X: ColRef("x"), Y: ColRef("y"), YAxis: RefID("missing")},
	})
	var re *AxisRefError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want *AxisRefError", err)
	}
	if re.Axis != "y" {
		t.Errorf("Axis = %q, want y", re.Axis)
	}
}

func TestSharedScaleCycle(t *testing.T) {
	_, err := NewPlot(
		[]Series{Line{X: ColRef("x"), Y: ColRef("y")}},
		WithXAxis(Axis{ID: "a", Scale: SharedScale{Ref: RefID("b")}}),
		WithXAxis(Axis{ID: "b", Scale: SharedScale{Ref: RefID("a")}}),
	)
	var se *SharedScaleError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *SharedScaleError", err)
	}
}

func TestFigureImmutability(t *testing.T) {
	fig, err := NewFigure([]*Plot{simplePlot(t)}, WithTitle("before"))
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	changed := fig.WithTitle("after")
	if fig.Title() != "before" {
		t.Errorf("original title mutated to %q", fig.Title())
	}
	if changed.Title() != "after" {
		t.Errorf("copy title = %q, want after", changed.Title())
	}
	if fig == changed {
		t.Error("WithTitle should return a distinct figure")
	}
}

func TestPlotsReturnsCopy(t *testing.T) {
	fig, err := NewFigure([]*Plot{simplePlot(t)})
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	got := fig.Plots()
	got[0] = nil
	if fig.Plots()[0] == nil {
		t.Error("mutating the returned slice reached the figure")
	}
}

func TestResolveColsLengthMismatch(t *testing.T) {
	p, err := NewPlot([]Series{
		Line{X: ColData([]float64{1, 2, 3}), Y: ColData([]float64{1, 2})},
	})
	if err != nil {
		t.Fatalf("NewPlot: %v", err)
	}
	_, err = bindPlot(p, datasrc.Columns{})
	var lme *datasrc.LengthMismatchError
	if !errors.As(err, &lme) {
		t.Fatalf("err = %v, want *LengthMismatchError", err)
	}
}

func TestBindMissingColumn(t *testing.T) {
	p := simplePlot(t)
	_, err := bindPlot(p, datasrc.Columns{"x": {1, 2, 3}})
	var se *datasrc.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *SchemaError", err)
	}
	if se.Column != "y" {
		t.Errorf("Column = %q, want y", se.Column)
	}
}

func TestParseHelpers(t *testing.T) {
	if _, err := ParseInterpolation("bogus"); err == nil {
		t.Error("expected interpolation parse error")
	}
	if got, err := ParseInterpolation("step-middle"); err != nil || got != StepMiddle {
		t.Errorf("ParseInterpolation(step-middle) = %v, %v", got, err)
	}
	if got, err := ParseLegendPosition("bottom"); err != nil || got != LegendBottom {
		t.Errorf("ParseLegendPosition(bottom) = %v, %v", got, err)
	}
	if got, err := ParsePlotLegendPosition("in-top-left"); err != nil || got != LegendInTopLeft {
		t.Errorf("ParsePlotLegendPosition(in-top-left) = %v, %v", got, err)
	}
	if !LegendInBottomRight.Inside() || LegendOutLeft.Inside() {
		t.Error("Inside() misclassifies positions")
	}
}

func TestHistogramBinning(t *testing.T) {
	edges, counts := histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 4)
	if len(edges) != 5 || len(counts) != 4 {
		t.Fatalf("got %d edges, %d counts", len(edges), len(counts))
	}
	if edges[0] != 0 || edges[4] != 7 {
		t.Errorf("edge range = [%v, %v], want [0, 7]", edges[0], edges[4])
	}
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != 8 {
		t.Errorf("counts sum to %v, want 8", total)
	}
}

func TestHistogramAutoBins(t *testing.T) {
	vals := make([]float64, 100)
	for i := range vals {
		vals[i] = float64(i)
	}
	edges, counts := histogram(vals, 0)
	// Sturges: ceil(log2(100)) + 1 = 8.
	if len(counts) != 8 || len(edges) != 9 {
		t.Errorf("auto binning gave %d bins, want 8", len(counts))
	}
}
