package plotive

// Plot is one chart cell: series drawn against an x and a y axis,
// with optional title, legend and annotations. Plots are immutable
// after construction.
type Plot struct {
	title       string
	series      []Series
	xAxes       []Axis
	yAxes       []Axis
	legend      PlotLegendPosition
	showLegend  bool
	annotations []Annotation
	row, col    int
	hasCell     bool
}

// PlotOption configures a Plot during construction.
type PlotOption func(*Plot)

// WithPlotTitle sets the plot title.
func WithPlotTitle(title string) PlotOption {
	return func(p *Plot) { p.title = title }
}

// WithXAxis replaces the default x axis. Repeated use appends further
// x axes; series select between them with AxisRef.
func WithXAxis(a Axis) PlotOption {
	return func(p *Plot) { p.xAxes = append(p.xAxes, a) }
}

// WithYAxis replaces the default y axis, appending on repeated use.
func WithYAxis(a Axis) PlotOption {
	return func(p *Plot) { p.yAxes = append(p.yAxes, a) }
}

// WithPlotLegend places a legend for this plot's named series.
func WithPlotLegend(pos PlotLegendPosition) PlotOption {
	return func(p *Plot) { p.legend = pos; p.showLegend = true }
}

// WithAnnotations attaches annotations, drawn in order.
func WithAnnotations(as ...Annotation) PlotOption {
	return func(p *Plot) { p.annotations = append(p.annotations, as...) }
}

// WithCell pins the plot to a grid cell instead of filling slots in
// declaration order.
func WithCell(row, col int) PlotOption {
	return func(p *Plot) { p.row, p.col, p.hasCell = row, col, true }
}

// NewPlot builds a plot from series. At least one series is required.
// Axes default to a single automatic x and y axis.
func NewPlot(series []Series, opts ...PlotOption) (*Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	p := &Plot{series: make([]Series, len(series))}
	copy(p.series, series)
	for _, opt := range opts {
		opt(p)
	}
	if len(p.xAxes) == 0 {
		p.xAxes = []Axis{{}}
	}
	if len(p.yAxes) == 0 {
		p.yAxes = []Axis{{}}
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Series returns the plot's series in draw order.
func (p *Plot) Series() []Series {
	out := make([]Series, len(p.series))
	copy(out, p.series)
	return out
}

// validate runs the structural pass: every series and shared scale
// must point at an axis that exists.
func (p *Plot) validate() error {
	if len(p.series) == 0 {
		return ErrNoSeries
	}
	for _, s := range p.series {
		if _, err := resolveAxisRef(p.xAxes, s.xAxis(), "x"); err != nil {
			return err
		}
		if _, err := resolveAxisRef(p.yAxes, s.yAxis(), "y"); err != nil {
			return err
		}
	}
	for i := range p.xAxes {
		if err := p.checkShared(p.xAxes, i, "x"); err != nil {
			return err
		}
	}
	for i := range p.yAxes {
		if err := p.checkShared(p.yAxes, i, "y"); err != nil {
			return err
		}
	}
	return nil
}

// checkShared verifies a SharedScale target exists and the chain is
// acyclic.
func (p *Plot) checkShared(axes []Axis, i int, which string) error {
	seen := map[int]bool{i: true}
	cur := i
	for {
		sh, ok := axes[cur].Scale.(SharedScale)
		if !ok {
			return nil
		}
		next, err := resolveAxisRef(axes, sh.Ref, which)
		if err != nil {
			return err
		}
		if seen[next] {
			return &SharedScaleError{Axis: axes[i].display(), Reason: "reference cycle"}
		}
		seen[next] = true
		cur = next
	}
}

// resolveAxisRef finds the axis index a ref selects. A zero ref means
// the first axis.
func resolveAxisRef(axes []Axis, ref AxisRef, which string) (int, error) {
	switch ref.kind {
	case refNone:
		return 0, nil
	case refID:
		for i := range axes {
			if axes[i].ID == ref.id {
				return i, nil
			}
		}
	case refTitle:
		for i := range axes {
			if axes[i].Title == ref.title {
				return i, nil
			}
		}
	case refIndex:
		if ref.index >= 0 && ref.index < len(axes) {
			return ref.index, nil
		}
	}
	return 0, &AxisRefError{Ref: ref, Axis: which}
}
