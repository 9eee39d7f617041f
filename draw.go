package plotive

import (
	"fmt"
	"math"

	"github.com/plotive/plotive/geom"
	"github.com/plotive/plotive/layout"
	"github.com/plotive/plotive/render"
	"github.com/plotive/plotive/text"
	"github.com/plotive/plotive/theme"
)

const (
	majorTickLen = 5
	minorTickLen = 3
	bandPad      = 4
	legendMargin = 8
)

// axisSide places an axis band: bottom/left normally, top/right when
// the axis opts for the opposite side.
func axisSide(isX, opposite bool) layout.Side {
	switch {
	case isX && !opposite:
		return layout.Bottom
	case isX:
		return layout.Top
	case !opposite:
		return layout.Left
	}
	return layout.Right
}

// renderPlot lays out one plot inside its grid cell and draws it.
func (pass *renderPass) renderPlot(bp *boundPlot, cell geom.Rect) error {
	p := bp.plot

	var bands []layout.Band
	if p.title != "" {
		size, err := pass.measure(p.title, pass.th.LabelSize)
		if err != nil {
			return err
		}
		bands = append(bands, layout.Band{
			ID: "title", Side: layout.Top,
			Min: size.H + bandPad, Priority: layout.PriorityTitle,
		})
	}

	entries := pass.plotLegendEntries(bp)
	var legendBox geom.Size
	if p.showLegend && len(entries) > 0 && !p.legend.Inside() {
		var err error
		legendBox, err = pass.legendSize(entries)
		if err != nil {
			return err
		}
		var side layout.Side
		var min float64
		switch p.legend {
		case LegendOutTop:
			side, min = layout.Top, legendBox.H+bandPad
		case LegendOutBottom:
			side, min = layout.Bottom, legendBox.H+bandPad
		case LegendOutLeft:
			side, min = layout.Left, legendBox.W+bandPad
		default:
			side, min = layout.Right, legendBox.W+bandPad
		}
		bands = append(bands, layout.Band{ID: "legend", Side: side, Min: min, Priority: layout.PriorityLegend})
	}

	// Axis titles sit outside their tick label bands, so they are
	// carved first.
	for i := range bp.xAxes {
		a := bp.xAxes[i].axis
		if a.Title == "" {
			continue
		}
		size, err := pass.measure(a.Title, pass.th.LabelSize)
		if err != nil {
			return err
		}
		bands = append(bands, layout.Band{
			ID: fmt.Sprintf("x%d.title", i), Side: axisSide(true, a.Opposite),
			Min: size.H + bandPad, Priority: layout.PriorityAxisTitles,
		})
	}
	for i := range bp.yAxes {
		a := bp.yAxes[i].axis
		if a.Title == "" {
			continue
		}
		size, err := pass.measure(a.Title, pass.th.LabelSize)
		if err != nil {
			return err
		}
		// Rotated a quarter turn: text height becomes band width.
		bands = append(bands, layout.Band{
			ID: fmt.Sprintf("y%d.title", i), Side: axisSide(false, a.Opposite),
			Min: size.H + bandPad, Priority: layout.PriorityAxisTitles,
		})
	}
	for i := range bp.xAxes {
		h, err := pass.maxLabelHeight(bp.xAxes[i].labels)
		if err != nil {
			return err
		}
		bands = append(bands, layout.Band{
			ID: fmt.Sprintf("x%d.ticks", i), Side: axisSide(true, bp.xAxes[i].axis.Opposite),
			Min: h + majorTickLen + bandPad, Priority: layout.PriorityTickLabels,
		})
	}
	for i := range bp.yAxes {
		w, err := pass.maxLabelWidth(bp.yAxes[i].labels)
		if err != nil {
			return err
		}
		bands = append(bands, layout.Band{
			ID: fmt.Sprintf("y%d.ticks", i), Side: axisSide(false, bp.yAxes[i].axis.Opposite),
			Min: w + majorTickLen + bandPad, Priority: layout.PriorityTickLabels,
		})
	}

	res, err := layout.Solve(layout.Request{
		Surface:     geom.Size{W: cell.W, H: cell.H},
		Bands:       bands,
		ShrinkOrder: pass.fig.shrink,
	})
	if err != nil {
		return err
	}
	origin := geom.Pt(cell.X, cell.Y)
	data := translate(res.Cell(0, 0), origin)

	if err := pass.drawAnnotations(bp, data, true); err != nil {
		return err
	}
	pass.drawGrid(bp, data)
	if err := pass.drawSeries(bp, data); err != nil {
		return err
	}
	if err := pass.drawAnnotations(bp, data, false); err != nil {
		return err
	}
	if err := pass.drawAxes(bp, res, origin, data); err != nil {
		return err
	}

	if p.title != "" {
		band := translate(res.Bands["title"], origin)
		if err := pass.drawCentered(p.title, pass.th.LabelSize, band, pass.th.Palette.Text); err != nil {
			return err
		}
	}

	if p.showLegend && len(entries) > 0 {
		var box geom.Rect
		if p.legend.Inside() {
			size, err := pass.legendSize(entries)
			if err != nil {
				return err
			}
			box = insideLegendRect(p.legend, data, size)
		} else {
			band := translate(res.Bands["legend"], origin)
			box = geom.XYWH(
				band.X+(band.W-legendBox.W)/2,
				band.Y+(band.H-legendBox.H)/2,
				legendBox.W, legendBox.H,
			)
		}
		if err := pass.drawLegend(entries, box); err != nil {
			return err
		}
	}
	return nil
}

// px maps a data value onto the horizontal extent of the data rect.
func px(ba *boundAxis, data geom.Rect, v float64) float64 {
	return data.X + ba.scale.Normalize(v)*data.W
}

// py maps a data value onto the vertical extent, y up in data space.
func py(ba *boundAxis, data geom.Rect, v float64) float64 {
	return data.MaxY() - ba.scale.Normalize(v)*data.H
}

// drawGrid strokes minor then major grid lines under the series.
func (pass *renderPass) drawGrid(bp *boundPlot, data geom.Rect) {
	major := render.Stroke{Width: 1, Color: pass.th.Palette.Grid}
	minor := render.Stroke{Width: 1, Color: pass.th.Palette.Grid.WithAlpha(pass.th.Palette.Grid.A * 0.5)}

	for i := range bp.xAxes {
		ba := &bp.xAxes[i]
		if ba.axis.Grid == GridOff {
			continue
		}
		for _, t := range ba.minor {
			x := px(ba, data, t)
			pass.strokeLine(geom.Pt(x, data.Y), geom.Pt(x, data.MaxY()), minor)
		}
		for _, t := range ba.ticks {
			x := px(ba, data, t)
			pass.strokeLine(geom.Pt(x, data.Y), geom.Pt(x, data.MaxY()), major)
		}
	}
	for i := range bp.yAxes {
		ba := &bp.yAxes[i]
		if ba.axis.Grid == GridOff {
			continue
		}
		for _, t := range ba.minor {
			y := py(ba, data, t)
			pass.strokeLine(geom.Pt(data.X, y), geom.Pt(data.MaxX(), y), minor)
		}
		for _, t := range ba.ticks {
			y := py(ba, data, t)
			pass.strokeLine(geom.Pt(data.X, y), geom.Pt(data.MaxX(), y), major)
		}
	}
}

func (pass *renderPass) strokeLine(a, b geom.Point, s render.Stroke) {
	p := render.NewPath()
	p.MoveTo(a)
	p.LineTo(b)
	pass.sur.StrokePath(p, s)
}

// drawSeries draws every series in declaration order.
func (pass *renderPass) drawSeries(bp *boundPlot, data geom.Rect) error {
	for i, bs := range bp.series {
		color := pass.colors[bp][i]
		xa, ya := &bp.xAxes[bs.xi], &bp.yAxes[bs.yi]
		switch v := bs.src.(type) {
		case Line:
			pts := mapPoints(bs.xs, bs.ys, xa, ya, data)
			if len(pts) < 2 {
				continue
			}
			pass.sur.StrokePath(linePath(pts, v.Interpolation), render.Stroke{
				Width: widthOr(v.Style.Width, 2),
				Color: color,
				Dash:  render.NewDash(v.Style.Dash...),
			})
		case Scatter:
			r := v.Size
			if r <= 0 {
				r = 3.5
			}
			p := render.NewPath()
			for _, pt := range mapPoints(bs.xs, bs.ys, xa, ya, data) {
				markerPath(p, v.Marker, pt, r)
			}
			pass.sur.FillPath(p, color)
		case Histogram:
			pass.drawBins(bs.xs, bs.ys, xa, ya, data, color)
		case Bar:
			frac := v.WidthFrac
			if frac <= 0 {
				frac = 0.8
			}
			pass.drawBars(bs.xs, bs.ys, frac, xa, ya, data, color)
		}
	}
	return nil
}

// mapPoints converts paired columns to pixel points, skipping
// non-finite values.
func mapPoints(xs, ys []float64, xa, ya *boundAxis, data geom.Rect) []geom.Point {
	pts := make([]geom.Point, 0, len(xs))
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		pts = append(pts, geom.Pt(px(xa, data, xs[i]), py(ya, data, ys[i])))
	}
	return pts
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// drawBins fills histogram bars between consecutive edges.
func (pass *renderPass) drawBins(edges, counts []float64, xa, ya *boundAxis, data geom.Rect, c theme.RGBA) {
	base := py(ya, data, 0)
	p := render.NewPath()
	for i, n := range counts {
		x0 := px(xa, data, edges[i])
		x1 := px(xa, data, edges[i+1])
		top := py(ya, data, n)
		p.Rect(geom.XYWH(x0, top, x1-x0, base-top))
	}
	pass.sur.FillPath(p, c)
}

// drawBars fills one bar per (x, y) pair, widthFrac of the smallest x
// spacing wide.
func (pass *renderPass) drawBars(xs, ys []float64, widthFrac float64, xa, ya *boundAxis, data geom.Rect, c theme.RGBA) {
	spacing := math.Inf(1)
	for i := 1; i < len(xs); i++ {
		d := math.Abs(xs[i] - xs[i-1])
		if d > 0 {
			spacing = math.Min(spacing, d)
		}
	}
	if math.IsInf(spacing, 1) {
		spacing = 1
	}
	halfW := (px(xa, data, spacing) - px(xa, data, 0)) * widthFrac / 2
	base := py(ya, data, 0)
	p := render.NewPath()
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		x := px(xa, data, xs[i])
		top := py(ya, data, ys[i])
		y0, y1 := math.Min(top, base), math.Max(top, base)
		p.Rect(geom.XYWH(x-halfW, y0, 2*halfW, y1-y0))
	}
	pass.sur.FillPath(p, c)
}

// markerPath appends one marker shape centered at pt.
func markerPath(p *render.Path, m Marker, pt geom.Point, r float64) {
	switch m {
	case MarkerSquare:
		p.Rect(geom.XYWH(pt.X-r, pt.Y-r, 2*r, 2*r))
	case MarkerDiamond:
		p.MoveTo(geom.Pt(pt.X, pt.Y-r))
		p.LineTo(geom.Pt(pt.X+r, pt.Y))
		p.LineTo(geom.Pt(pt.X, pt.Y+r))
		p.LineTo(geom.Pt(pt.X-r, pt.Y))
		p.Close()
	case MarkerTriangle:
		p.MoveTo(geom.Pt(pt.X, pt.Y-r))
		p.LineTo(geom.Pt(pt.X+r, pt.Y+r))
		p.LineTo(geom.Pt(pt.X-r, pt.Y+r))
		p.Close()
	case MarkerCross:
		t := r / 3
		p.Rect(geom.XYWH(pt.X-t/2, pt.Y-r, t, 2*r))
		p.Rect(geom.XYWH(pt.X-r, pt.Y-t/2, 2*r, t))
	case MarkerX:
		t := r / 3
		for _, angle := range []float64{math.Pi / 4, -math.Pi / 4} {
			bar := render.NewPath()
			bar.Rect(geom.XYWH(pt.X-t/2, pt.Y-r, t, 2*r))
			rotated := bar.Transform(render.RotateAround(pt, angle))
			for _, el := range rotated.Elements() {
				switch e := el.(type) {
				case render.MoveTo:
					p.MoveTo(e.Point)
				case render.LineTo:
					p.LineTo(e.Point)
				case render.Close:
					p.Close()
				}
			}
		}
	default:
		p.Circle(pt, r)
	}
}

// drawAxes strokes the plot frame, tick marks, tick labels and axis
// titles.
func (pass *renderPass) drawAxes(bp *boundPlot, res *layout.Result, origin geom.Point, data geom.Rect) error {
	axisStroke := render.Stroke{Width: 1, Color: pass.th.Palette.Axis}

	frame := render.NewPath()
	frame.Rect(data)
	pass.sur.StrokePath(frame, axisStroke)

	for i := range bp.xAxes {
		ba := &bp.xAxes[i]
		top := ba.axis.Opposite
		edge, dir := data.MaxY(), 1.0
		if top {
			edge, dir = data.Y, -1
		}
		for _, t := range ba.minor {
			x := px(ba, data, t)
			pass.strokeLine(geom.Pt(x, edge), geom.Pt(x, edge+dir*minorTickLen), axisStroke)
		}
		for j, t := range ba.ticks {
			x := px(ba, data, t)
			pass.strokeLine(geom.Pt(x, edge), geom.Pt(x, edge+dir*majorTickLen), axisStroke)
			l, err := pass.shape(ba.labels[j], pass.th.TickSize)
			if err != nil {
				return err
			}
			y := edge + dir*(majorTickLen+2)
			if top {
				y -= l.Descent
			} else {
				y += l.Ascent
			}
			pass.sur.GlyphRun(l, geom.Pt(x-l.Advance/2, y), pass.th.Palette.Text)
		}
		if ba.axis.Title != "" {
			band := translate(res.Bands[fmt.Sprintf("x%d.title", i)], origin)
			if err := pass.drawCentered(ba.axis.Title, pass.th.LabelSize, band, pass.th.Palette.Text); err != nil {
				return err
			}
		}
	}

	for i := range bp.yAxes {
		ba := &bp.yAxes[i]
		right := ba.axis.Opposite
		edge, dir := data.X, -1.0
		if right {
			edge, dir = data.MaxX(), 1
		}
		for _, t := range ba.minor {
			y := py(ba, data, t)
			pass.strokeLine(geom.Pt(edge, y), geom.Pt(edge+dir*minorTickLen, y), axisStroke)
		}
		for j, t := range ba.ticks {
			y := py(ba, data, t)
			pass.strokeLine(geom.Pt(edge, y), geom.Pt(edge+dir*majorTickLen, y), axisStroke)
			l, err := pass.shape(ba.labels[j], pass.th.TickSize)
			if err != nil {
				return err
			}
			x := edge + dir*(majorTickLen+2)
			if !right {
				x -= l.Advance
			}
			baseline := y + (l.Ascent-l.Descent)/2
			pass.sur.GlyphRun(l, geom.Pt(x, baseline), pass.th.Palette.Text)
		}
		if ba.axis.Title != "" {
			band := translate(res.Bands[fmt.Sprintf("y%d.title", i)], origin)
			if err := pass.drawVertical(ba.axis.Title, pass.th.LabelSize, band, right); err != nil {
				return err
			}
		}
	}
	return nil
}

// drawVertical draws text rotated a quarter turn, reading bottom-up on
// the left side and top-down on the right.
func (pass *renderPass) drawVertical(s string, size float64, band geom.Rect, right bool) error {
	l, err := pass.shape(s, size)
	if err != nil {
		return err
	}
	center := band.Center()
	angle := -math.Pi / 2
	if right {
		angle = math.Pi / 2
	}
	origin := geom.Pt(center.X-l.Advance/2, center.Y+(l.Ascent-l.Descent)/2)
	path := render.GlyphPath(l, origin).Transform(render.RotateAround(center, angle))
	pass.sur.FillPath(path, pass.th.Palette.Text)
	return nil
}

// drawAnnotations draws the plot's annotations for one z position.
func (pass *renderPass) drawAnnotations(bp *boundPlot, data geom.Rect, below bool) error {
	xa, ya := &bp.xAxes[0], &bp.yAxes[0]
	for _, a := range bp.plot.annotations {
		if a.below() != below {
			continue
		}
		switch v := a.(type) {
		case LineAnnotation:
			if err := pass.drawLineAnnotation(v, xa, ya, data); err != nil {
				return err
			}
		case ArrowAnnotation:
			if err := pass.drawArrow(v, xa, ya, data); err != nil {
				return err
			}
		case LabelAnnotation:
			if err := pass.drawLabel(v, xa, ya, data); err != nil {
				return err
			}
		}
	}
	return nil
}

// annotationStroke resolves an annotation's stroke, defaulting to the
// foreground color.
func (pass *renderPass) annotationStroke(st Style) (render.Stroke, error) {
	c, err := pass.res.ColorOr(st.Color, theme.RefForeground, "annotation", "color")
	if err != nil {
		return render.Stroke{}, err
	}
	return render.Stroke{
		Width: widthOr(st.Width, 1.5),
		Color: c,
		Dash:  render.NewDash(st.Dash...),
	}, nil
}

func widthOr(w, def float64) float64 {
	if w > 0 {
		return w
	}
	return def
}

func (pass *renderPass) drawLineAnnotation(v LineAnnotation, xa, ya *boundAxis, data geom.Rect) error {
	stroke, err := pass.annotationStroke(v.Style)
	if err != nil {
		return err
	}
	var a, b geom.Point
	switch v.kind {
	case lineHorizontal:
		y := py(ya, data, v.at)
		a, b = geom.Pt(data.X, y), geom.Pt(data.MaxX(), y)
	case lineVertical:
		x := px(xa, data, v.at)
		a, b = geom.Pt(x, data.Y), geom.Pt(x, data.MaxY())
	case lineSlope:
		// Evaluated at the x domain ends; assumes linear axes.
		x0, x1 := xa.scale.Domain()
		a = geom.Pt(px(xa, data, x0), py(ya, data, v.origin.Y+v.slope*(x0-v.origin.X)))
		b = geom.Pt(px(xa, data, x1), py(ya, data, v.origin.Y+v.slope*(x1-v.origin.X)))
	case lineSegment:
		a = geom.Pt(px(xa, data, v.p0.X), py(ya, data, v.p0.Y))
		b = geom.Pt(px(xa, data, v.p1.X), py(ya, data, v.p1.Y))
	}
	pass.strokeLine(a, b, stroke)
	return nil
}

func (pass *renderPass) drawArrow(v ArrowAnnotation, xa, ya *boundAxis, data geom.Rect) error {
	stroke, err := pass.annotationStroke(v.Style)
	if err != nil {
		return err
	}
	a := geom.Pt(px(xa, data, v.Origin.X), py(ya, data, v.Origin.Y))
	tip := geom.Pt(
		px(xa, data, v.Origin.X+v.Delta.X),
		py(ya, data, v.Origin.Y+v.Delta.Y),
	)
	pass.strokeLine(a, tip, stroke)

	head := v.HeadSize
	if head <= 0 {
		head = 8
	}
	back := a.Sub(tip)
	if back.Length() == 0 {
		return nil
	}
	back = back.Normalize().Mul(head)
	for _, angle := range []float64{math.Pi / 7, -math.Pi / 7} {
		pass.strokeLine(tip, tip.Add(back.Rotate(angle)), stroke)
	}
	return nil
}

func (pass *renderPass) drawLabel(v LabelAnnotation, xa, ya *boundAxis, data geom.Rect) error {
	l, err := pass.shape(v.Text, pass.th.LabelSize)
	if err != nil {
		return err
	}
	at := geom.Pt(px(xa, data, v.At.X), py(ya, data, v.At.Y))

	size := l.Size()
	var topLeft geom.Point
	switch v.Anchor {
	case AnchorTopLeft:
		topLeft = at
	case AnchorTopRight:
		topLeft = geom.Pt(at.X-size.W, at.Y)
	case AnchorBottomLeft:
		topLeft = geom.Pt(at.X, at.Y-size.H)
	case AnchorBottomRight:
		topLeft = geom.Pt(at.X-size.W, at.Y-size.H)
	case AnchorCenter:
		topLeft = geom.Pt(at.X-size.W/2, at.Y-size.H/2)
	}

	rotate := render.RotateAround(at, -v.Angle*math.Pi/180)
	if v.Frame {
		fill, err := pass.res.ColorOr("", theme.RefLegendFill, "label", "fill")
		if err != nil {
			return err
		}
		border, err := pass.res.ColorOr("", theme.RefLegendBorder, "label", "border")
		if err != nil {
			return err
		}
		box := render.NewPath()
		box.Rect(geom.XYWH(topLeft.X-3, topLeft.Y-2, size.W+6, size.H+4))
		framed := box.Transform(rotate)
		pass.sur.FillPath(framed, fill)
		pass.sur.StrokePath(framed, render.Stroke{Width: 1, Color: border})
	}

	c, err := pass.res.ColorOr(v.Style.Color, theme.RefText, "label", "color")
	if err != nil {
		return err
	}
	origin := geom.Pt(topLeft.X, topLeft.Y+l.Ascent)
	if v.Angle != 0 {
		pass.sur.FillPath(render.GlyphPath(l, origin).Transform(rotate), c)
	} else {
		pass.sur.GlyphRun(l, origin, c)
	}
	return nil
}

// legendEntry is one legend row: swatch color plus label.
type legendEntry struct {
	label string
	color theme.RGBA
}

// plotLegendEntries lists this plot's named series in order.
func (pass *renderPass) plotLegendEntries(bp *boundPlot) []legendEntry {
	var out []legendEntry
	seen := map[string]bool{}
	for i, bs := range bp.series {
		label := bs.src.Label()
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, legendEntry{label: label, color: pass.colors[bp][i]})
	}
	return out
}

const (
	legendSwatch  = 18
	legendPadding = 6
	legendGap     = 5
)

// legendSize measures the box needed for stacked legend entries.
func (pass *renderPass) legendSize(entries []legendEntry) (geom.Size, error) {
	var maxW, lineH float64
	for _, e := range entries {
		size, err := pass.measure(e.label, pass.th.LabelSize)
		if err != nil {
			return geom.Size{}, err
		}
		maxW = math.Max(maxW, size.W)
		lineH = math.Max(lineH, size.H)
	}
	lineH += legendGap
	return geom.Size{
		W: legendPadding*2 + legendSwatch + legendGap + maxW,
		H: legendPadding*2 + lineH*float64(len(entries)) - legendGap,
	}, nil
}

// insideLegendRect floats the legend box inside the data rect.
func insideLegendRect(pos PlotLegendPosition, data geom.Rect, size geom.Size) geom.Rect {
	x := data.X + (data.W-size.W)/2
	y := data.Y + (data.H-size.H)/2
	switch pos {
	case LegendInTopLeft, LegendInLeft, LegendInBottomLeft:
		x = data.X + legendMargin
	case LegendInTopRight, LegendInRight, LegendInBottomRight:
		x = data.MaxX() - size.W - legendMargin
	}
	switch pos {
	case LegendInTopLeft, LegendInTop, LegendInTopRight:
		y = data.Y + legendMargin
	case LegendInBottomLeft, LegendInBottom, LegendInBottomRight:
		y = data.MaxY() - size.H - legendMargin
	}
	return geom.XYWH(x, y, size.W, size.H)
}

// drawLegend fills the legend box and its entries.
func (pass *renderPass) drawLegend(entries []legendEntry, box geom.Rect) error {
	bg := render.NewPath()
	bg.Rect(box)
	pass.sur.FillPath(bg, pass.th.Palette.LegendFill)
	pass.sur.StrokePath(bg, render.Stroke{Width: 1, Color: pass.th.Palette.LegendBorder})

	layouts := make([]*text.Layout, len(entries))
	var lineH float64
	for i, e := range entries {
		l, err := pass.shape(e.label, pass.th.LabelSize)
		if err != nil {
			return err
		}
		layouts[i] = l
		lineH = math.Max(lineH, l.Ascent+l.Descent)
	}
	y := box.Y + legendPadding
	for i, e := range entries {
		l := layouts[i]
		mid := y + lineH/2
		pass.strokeLine(
			geom.Pt(box.X+legendPadding, mid),
			geom.Pt(box.X+legendPadding+legendSwatch, mid),
			render.Stroke{Width: 2.5, Color: e.color},
		)
		pass.sur.GlyphRun(l,
			geom.Pt(box.X+legendPadding+legendSwatch+legendGap, y+(lineH-l.Ascent-l.Descent)/2+l.Ascent),
			pass.th.Palette.Text)
		y += lineH + legendGap
	}
	return nil
}

// maxLabelWidth measures the widest tick label.
func (pass *renderPass) maxLabelWidth(labels []string) (float64, error) {
	var w float64
	for _, s := range labels {
		size, err := pass.measure(s, pass.th.TickSize)
		if err != nil {
			return 0, err
		}
		w = math.Max(w, size.W)
	}
	return w, nil
}

// maxLabelHeight measures the tallest tick label.
func (pass *renderPass) maxLabelHeight(labels []string) (float64, error) {
	var h float64
	for _, s := range labels {
		size, err := pass.measure(s, pass.th.TickSize)
		if err != nil {
			return 0, err
		}
		h = math.Max(h, size.H)
	}
	return h, nil
}
