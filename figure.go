package plotive

import (
	"fmt"

	"github.com/plotive/plotive/geom"
	"github.com/plotive/plotive/layout"
	"github.com/plotive/plotive/theme"
)

// Figure is the root of the declarative model: a titled arrangement of
// plots sharing a theme. Figures are immutable once constructed;
// the With* methods return modified copies.
type Figure struct {
	title       string
	size        geom.Size
	padding     geom.Padding
	themeName   string
	customTheme *theme.Theme
	legend      LegendPosition
	showLegend  bool
	rows, cols  int
	weights     struct{ rows, cols []float64 }
	shrink      []layout.Priority
	plots       []*Plot
}

// FigureOption configures a Figure during construction.
//
// Example:
//
//	fig, err := plotive.NewFigure(plots,
//		plotive.WithTitle("Bode plot"),
//		plotive.WithTheme("mocha"),
//	)
type FigureOption func(*Figure)

// WithTitle sets the figure title.
func WithTitle(title string) FigureOption {
	return func(f *Figure) { f.title = title }
}

// WithSize sets the surface size in pixels. The default is 800 by 600.
func WithSize(w, h float64) FigureOption {
	return func(f *Figure) { f.size = geom.Size{W: w, H: h} }
}

// WithPadding sets the outer padding.
func WithPadding(p geom.Padding) FigureOption {
	return func(f *Figure) { f.padding = p }
}

// WithTheme selects a built-in theme by name ("light", "dark",
// "latte", "frappe", "macchiato", "mocha"). Unknown names fail at
// construction.
func WithTheme(name string) FigureOption {
	return func(f *Figure) { f.themeName = name }
}

// WithCustomTheme applies a caller-supplied theme.
func WithCustomTheme(t *theme.Theme) FigureOption {
	return func(f *Figure) { f.customTheme = t }
}

// WithLegend enables a figure-level legend collecting every named
// series across all plots.
func WithLegend(pos LegendPosition) FigureOption {
	return func(f *Figure) { f.legend = pos; f.showLegend = true }
}

// WithGrid arranges plots on a rows by cols grid. Without it, plots
// stack in a single column.
func WithGrid(rows, cols int) FigureOption {
	return func(f *Figure) { f.rows, f.cols = rows, cols }
}

// WithWeights divides the plot grid unevenly. Nil keeps equal shares.
func WithWeights(rowWeights, colWeights []float64) FigureOption {
	return func(f *Figure) {
		f.weights.rows = rowWeights
		f.weights.cols = colWeights
	}
}

// WithShrinkOrder overrides the order in which layout bands give way
// on small surfaces. The default releases tick labels first and titles
// last.
func WithShrinkOrder(order []layout.Priority) FigureOption {
	return func(f *Figure) { f.shrink = order }
}

// NewFigure builds a figure from plots. Structural validation runs
// here: at least one plot is required, the theme name must exist, and
// the grid must hold every plot. Data validation is deferred to render
// time, when a data source is bound.
func NewFigure(plots []*Plot, opts ...FigureOption) (*Figure, error) {
	if len(plots) == 0 {
		return nil, ErrNoPlots
	}
	f := &Figure{
		size:      geom.Size{W: 800, H: 600},
		padding:   geom.Even(10),
		themeName: "light",
		plots:     make([]*Plot, len(plots)),
	}
	copy(f.plots, plots)
	for _, opt := range opts {
		opt(f)
	}
	if f.rows < 1 || f.cols < 1 {
		f.rows, f.cols = len(f.plots), 1
	}
	if f.rows*f.cols < len(f.plots) {
		return nil, fmt.Errorf("plotive: %d plots exceed %dx%d grid", len(f.plots), f.rows, f.cols)
	}
	if f.customTheme == nil {
		if _, err := theme.Lookup(f.themeName); err != nil {
			return nil, err
		}
	}
	for _, p := range f.plots {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Title returns the figure title.
func (f *Figure) Title() string { return f.title }

// Size returns the surface size in pixels.
func (f *Figure) Size() geom.Size { return f.size }

// Plots returns the figure's plots. The slice is a copy; plots
// themselves are never mutated after construction.
func (f *Figure) Plots() []*Plot {
	out := make([]*Plot, len(f.plots))
	copy(out, f.plots)
	return out
}

// WithTitle returns a copy of the figure with a new title.
func (f *Figure) WithTitle(title string) *Figure {
	g := *f
	g.title = title
	return &g
}

// WithTheme returns a copy of the figure using the named theme. The
// name is validated at the next render.
func (f *Figure) WithTheme(name string) *Figure {
	g := *f
	g.themeName = name
	g.customTheme = nil
	return &g
}

// resolveTheme returns the figure's effective theme.
func (f *Figure) resolveTheme() (theme.Theme, error) {
	if f.customTheme != nil {
		return *f.customTheme, nil
	}
	return theme.Lookup(f.themeName)
}
