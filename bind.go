package plotive

import (
	"math"

	"github.com/plotive/plotive/datasrc"
	"github.com/plotive/plotive/scales"
	"github.com/plotive/plotive/ticks"
)

// boundSeries is a series with its columns resolved to values. For
// histograms xs holds bin edges (one more than ys, the counts); for
// every other variant xs and ys pair up point by point.
type boundSeries struct {
	src    Series
	xs, ys []float64
	xi, yi int
}

// boundAxis is an axis with its scale, ticks and labels resolved.
type boundAxis struct {
	axis    *Axis
	scale   scales.Scale
	dataMin float64
	dataMax float64
	ticks   []float64
	minor   []float64
	labels  []string
}

// boundPlot holds one plot's render-ready state.
type boundPlot struct {
	plot   *Plot
	series []boundSeries
	xAxes  []boundAxis
	yAxes  []boundAxis
}

// bindPlot resolves a plot against the data source: column lookup,
// per-series length checks, axis ranges, scales and ticks. This is the
// data half of the two validation passes; structure was already
// checked at construction.
func bindPlot(p *Plot, src datasrc.Source) (*boundPlot, error) {
	bp := &boundPlot{plot: p}

	for _, s := range p.series {
		bs, err := bindSeries(p, s, src)
		if err != nil {
			return nil, err
		}
		bp.series = append(bp.series, bs)
	}

	var err error
	bp.xAxes, err = bindAxes(p.xAxes, bp.series, true)
	if err != nil {
		return nil, err
	}
	bp.yAxes, err = bindAxes(p.yAxes, bp.series, false)
	if err != nil {
		return nil, err
	}
	return bp, nil
}

func bindSeries(p *Plot, s Series, src datasrc.Source) (boundSeries, error) {
	cols, err := resolveCols(s.cols(), src)
	if err != nil {
		return boundSeries{}, err
	}
	xi, err := resolveAxisRef(p.xAxes, s.xAxis(), "x")
	if err != nil {
		return boundSeries{}, err
	}
	yi, err := resolveAxisRef(p.yAxes, s.yAxis(), "y")
	if err != nil {
		return boundSeries{}, err
	}
	bs := boundSeries{src: s, xi: xi, yi: yi}
	switch v := s.(type) {
	case Histogram:
		bs.xs, bs.ys = histogram(cols[0], v.Bins)
	default:
		bs.xs, bs.ys = cols[0], cols[1]
	}
	return bs, nil
}

// resolveCols fetches every column of one series and enforces equal
// lengths across them, inline data included.
func resolveCols(cs []Col, src datasrc.Source) ([][]float64, error) {
	out := make([][]float64, len(cs))
	for i, c := range cs {
		if c.IsRef() {
			col, err := src.Column(c.Name())
			if err != nil {
				return nil, err
			}
			out[i] = col
		} else {
			out[i] = c.data
		}
	}
	for i := 1; i < len(out); i++ {
		if len(out[i]) != len(out[0]) {
			return nil, &datasrc.LengthMismatchError{
				Column: cs[i].String(), Length: len(out[i]),
				Other: cs[0].String(), OtherLength: len(out[0]),
			}
		}
	}
	return out, nil
}

// bindAxes resolves scales and ticks for one direction's axis list.
func bindAxes(axes []Axis, series []boundSeries, isX bool) ([]boundAxis, error) {
	out := make([]boundAxis, len(axes))
	for i := range axes {
		out[i].axis = &axes[i]
		out[i].dataMin, out[i].dataMax = axisDataRange(series, i, isX)
	}

	// Non-shared scales first; shared ones then chase resolved
	// targets, cycle-free since construction checked the chains.
	for i := range axes {
		if _, shared := axes[i].Scale.(SharedScale); shared {
			continue
		}
		s, err := resolveScale(&out[i])
		if err != nil {
			return nil, err
		}
		out[i].scale = s
	}
	for i := range axes {
		if out[i].scale != nil {
			continue
		}
		cur := i
		for {
			sh, ok := axes[cur].Scale.(SharedScale)
			if !ok {
				break
			}
			next, err := resolveAxisRef(axes, sh.Ref, axisDirection(isX))
			if err != nil {
				return nil, err
			}
			cur = next
		}
		if out[cur].scale == nil {
			s, err := resolveScale(&out[cur])
			if err != nil {
				return nil, err
			}
			out[cur].scale = s
		}
		out[i].scale = out[cur].scale
		out[i].dataMin, out[i].dataMax = out[cur].dataMin, out[cur].dataMax
	}

	for i := range out {
		if err := resolveTicks(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func axisDirection(isX bool) string {
	if isX {
		return "x"
	}
	return "y"
}

// axisDataRange unions the extents of every series mapped to axis i.
func axisDataRange(series []boundSeries, i int, isX bool) (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, bs := range series {
		var idx int
		var vals []float64
		if isX {
			idx, vals = bs.xi, bs.xs
		} else {
			idx, vals = bs.yi, bs.ys
		}
		if idx != i {
			continue
		}
		for _, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
		if !isX {
			// Histogram and bar baselines sit at zero.
			switch bs.src.(type) {
			case Histogram, Bar:
				min = math.Min(min, 0)
				max = math.Max(max, 0)
			}
		}
	}
	if min > max {
		min, max = 0, 1
	}
	return min, max
}

// scalePadFrac widens automatic ranges so extreme points do not sit on
// the plot border.
const scalePadFrac = 0.05

// resolveScale builds the concrete scale for one axis.
func resolveScale(ba *boundAxis) (scales.Scale, error) {
	switch sc := ba.axis.Scale.(type) {
	case nil, AutoScale:
		s := scales.NewLinear(ba.dataMin, ba.dataMax)
		return scales.PadDomain(s, scalePadFrac), nil
	case LinScale:
		ba.dataMin, ba.dataMax = sc.Min, sc.Max
		return scales.NewLinear(sc.Min, sc.Max), nil
	case LogScale:
		base := sc.Base
		if base == 0 {
			base = 10
		}
		lo, hi := sc.Min, sc.Max
		if lo == 0 && hi == 0 {
			lo, hi = ba.dataMin, ba.dataMax
		} else {
			ba.dataMin, ba.dataMax = lo, hi
		}
		return scales.NewLog(base, lo, hi)
	}
	return nil, &SharedScaleError{Axis: ba.axis.display(), Reason: "unresolved"}
}

// resolveTicks locates and labels major and minor ticks over the
// axis' data range.
func resolveTicks(ba *boundAxis) error {
	loc, err := ba.axis.locator()
	if err != nil {
		return err
	}
	// A log scale with default ticks gets log-spaced majors.
	if lg, ok := ba.scale.(scales.Log); ok && ba.axis.Ticks == nil && ba.axis.TickSpec == "" {
		loc = ticks.Log{Base: lg.Base}
	}
	ba.ticks = loc.Locate(ba.dataMin, ba.dataMax)
	ba.labels = ba.axis.formatter(loc).Labels(ba.ticks)
	if ba.axis.MinorTicks || ba.axis.Grid == GridOn {
		ba.minor = ticks.MinorFor(loc, ba.dataMin, ba.dataMax, ba.ticks)
	}
	return nil
}

// histogram bins values into equal-width bins, returning edges and
// counts. A zero binCount derives one from the sample size.
func histogram(values []float64, binCount int) (edges, counts []float64) {
	min, max := math.Inf(1), math.Inf(-1)
	n := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		min = math.Min(min, v)
		max = math.Max(max, v)
		n++
	}
	if n == 0 {
		return []float64{0, 1}, []float64{0}
	}
	if binCount <= 0 {
		// Sturges' rule.
		binCount = int(math.Ceil(math.Log2(float64(n)))) + 1
		if binCount < 1 {
			binCount = 1
		}
	}
	if min == max {
		min, max = min-0.5, max+0.5
	}
	width := (max - min) / float64(binCount)
	edges = make([]float64, binCount+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	counts = make([]float64, binCount)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		b := int((v - min) / width)
		if b == binCount {
			b--
		}
		counts[b]++
	}
	return edges, counts
}
