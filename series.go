package plotive

import "fmt"

// Col references a data column either by source name or by inline
// values carried in the figure itself.
type Col struct {
	name string
	data []float64
}

// ColRef references a named column of the bound data source.
func ColRef(name string) Col { return Col{name: name} }

// ColData carries values inline, bypassing the data source.
func ColData(values []float64) Col {
	data := make([]float64, len(values))
	copy(data, values)
	return Col{data: data}
}

// IsRef reports whether the column resolves against the data source.
func (c Col) IsRef() bool { return c.data == nil }

// Name returns the referenced column name, empty for inline data.
func (c Col) Name() string { return c.name }

func (c Col) String() string {
	if c.IsRef() {
		return fmt.Sprintf("column %q", c.name)
	}
	return fmt.Sprintf("inline[%d]", len(c.data))
}

// Interpolation selects how a line series connects its points.
type Interpolation int

const (
	Linear Interpolation = iota
	StepEarly
	StepMiddle
	StepLate
	Spline
)

// ParseInterpolation parses an interpolation name.
func ParseInterpolation(s string) (Interpolation, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "step-early":
		return StepEarly, nil
	case "step-middle":
		return StepMiddle, nil
	case "step-late":
		return StepLate, nil
	case "spline":
		return Spline, nil
	}
	return 0, fmt.Errorf("plotive: unknown interpolation %q", s)
}

// Marker selects a scatter point shape.
type Marker int

const (
	MarkerCircle Marker = iota
	MarkerSquare
	MarkerDiamond
	MarkerTriangle
	MarkerCross
	MarkerX
)

// Style holds per-series visual overrides. Zero fields resolve from
// the theme: an empty Color takes the next palette color, a zero Width
// the theme default.
type Style struct {
	// Color is a theme color spec: hex ("#89b4fa"), a CSS name, or
	// a palette role name ("foreground").
	Color string

	// Width is the stroke width in pixels.
	Width float64

	// Dash is the dash pattern; nil strokes solid.
	Dash []float64

	// Fill controls area fill for histogram and bar series; for
	// line/scatter it is ignored.
	Fill bool
}

// Series is one drawable data set of a plot. The variants are Line,
// Scatter, Histogram and Bar.
type Series interface {
	isSeries()

	// Label is the legend entry, empty to omit the series from the
	// legend.
	Label() string

	// cols lists the columns the series needs, x first.
	cols() []Col

	// xAxis and yAxis name the axes the series maps to.
	xAxis() AxisRef
	yAxis() AxisRef
}

// Line connects (X, Y) points with an interpolated stroke.
type Line struct {
	X, Y          Col
	Name          string
	Interpolation Interpolation
	Style         Style
	XAxis, YAxis  AxisRef
}

func (Line) isSeries()        {}
func (s Line) Label() string  { return s.Name }
func (s Line) cols() []Col    { return []Col{s.X, s.Y} }
func (s Line) xAxis() AxisRef { return s.XAxis }
func (s Line) yAxis() AxisRef { return s.YAxis }

// Scatter draws a marker at each (X, Y) point.
type Scatter struct {
	X, Y         Col
	Name         string
	Marker       Marker
	Size         float64
	Style        Style
	XAxis, YAxis AxisRef
}

func (Scatter) isSeries()        {}
func (s Scatter) Label() string  { return s.Name }
func (s Scatter) cols() []Col    { return []Col{s.X, s.Y} }
func (s Scatter) xAxis() AxisRef { return s.XAxis }
func (s Scatter) yAxis() AxisRef { return s.YAxis }

// Histogram bins X values and draws counts as bars. Bins of zero picks
// a bin count from the sample size.
type Histogram struct {
	X            Col
	Bins         int
	Name         string
	Style        Style
	XAxis, YAxis AxisRef
}

func (Histogram) isSeries()        {}
func (s Histogram) Label() string  { return s.Name }
func (s Histogram) cols() []Col    { return []Col{s.X} }
func (s Histogram) xAxis() AxisRef { return s.XAxis }
func (s Histogram) yAxis() AxisRef { return s.YAxis }

// Bar draws one bar per (X, Y) pair. WidthFrac is the bar width as a
// fraction of the smallest X spacing; zero means 0.8.
type Bar struct {
	X, Y         Col
	WidthFrac    float64
	Name         string
	Style        Style
	XAxis, YAxis AxisRef
}

func (Bar) isSeries()        {}
func (s Bar) Label() string  { return s.Name }
func (s Bar) cols() []Col    { return []Col{s.X, s.Y} }
func (s Bar) xAxis() AxisRef { return s.XAxis }
func (s Bar) yAxis() AxisRef { return s.YAxis }
