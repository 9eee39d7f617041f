package plotive

import (
	"fmt"
	"sync"

	"github.com/plotive/plotive/datasrc"
	"github.com/plotive/plotive/geom"
	"github.com/plotive/plotive/layout"
	"github.com/plotive/plotive/render"
	"github.com/plotive/plotive/text"
	"github.com/plotive/plotive/theme"
)

// sharedShaper lazily builds one process-wide shaper. Shaping is pure
// and internally synchronized, so independent figures render in
// parallel against it.
var sharedShaper = sync.OnceValues(func() (*text.Shaper, error) {
	return text.NewShaper()
})

// renderPass carries the transient state of one render: bound plots,
// resolved theme, measured extents. It is discarded when the pass
// ends; nothing persists across renders.
type renderPass struct {
	fig    *Figure
	th     theme.Theme
	res    theme.Resolver
	shaper *text.Shaper
	sur    render.Surface
	plots  []*boundPlot
	colors map[*boundPlot][]theme.RGBA
}

// renderTo executes the full pipeline onto an open surface: bind,
// measure, lay out, draw. The surface is not flushed here.
func (f *Figure) renderTo(sur render.Surface, src datasrc.Source) error {
	th, err := f.resolveTheme()
	if err != nil {
		return err
	}
	shaper, err := sharedShaper()
	if err != nil {
		return err
	}
	pass := &renderPass{
		fig:    f,
		th:     th,
		res:    theme.Resolver{Theme: th},
		shaper: shaper,
		sur:    sur,
		colors: make(map[*boundPlot][]theme.RGBA),
	}
	for _, p := range f.plots {
		bp, err := bindPlot(p, src)
		if err != nil {
			return err
		}
		pass.plots = append(pass.plots, bp)
	}
	for _, bp := range pass.plots {
		if err := pass.resolveColors(bp); err != nil {
			return err
		}
	}
	return pass.run()
}

// resolveColors fixes one color per series before anything draws, so
// series geometry and legend swatches always agree.
func (pass *renderPass) resolveColors(bp *boundPlot) error {
	total := 0
	for _, bs := range bp.series {
		if seriesStyle(bs.src).Color == "" {
			total++
		}
	}
	colors := make([]theme.RGBA, len(bp.series))
	auto := 0
	for i, bs := range bp.series {
		st := seriesStyle(bs.src)
		if st.Color == "" {
			colors[i] = pass.res.SeriesColor(auto, total)
			auto++
			continue
		}
		c, err := pass.res.Color(st.Color, fmt.Sprintf("series %d", i), "color")
		if err != nil {
			return err
		}
		colors[i] = c
	}
	pass.colors[bp] = colors
	return nil
}

func seriesStyle(s Series) Style {
	switch v := s.(type) {
	case Line:
		return v.Style
	case Scatter:
		return v.Style
	case Histogram:
		return v.Style
	case Bar:
		return v.Style
	}
	return Style{}
}

// figureGap separates plot cells and figure bands.
const figureGap = 10

// run solves the figure-level layout and draws every element.
func (pass *renderPass) run() error {
	f := pass.fig
	pad := f.padding
	inner := geom.Size{W: f.size.W - pad.Horizontal(), H: f.size.H - pad.Vertical()}
	offset := geom.Pt(pad.Left, pad.Top)

	var bands []layout.Band
	var titleSize geom.Size
	if f.title != "" {
		var err error
		titleSize, err = pass.measure(f.title, pass.th.TitleSize)
		if err != nil {
			return err
		}
		bands = append(bands, layout.Band{
			ID: "fig.title", Side: layout.Top,
			Min: titleSize.H + figureGap, Priority: layout.PriorityTitle,
		})
	}

	var figEntries []legendEntry
	if f.showLegend {
		figEntries = pass.figureLegendEntries()
	}
	var legendBox geom.Size
	if len(figEntries) > 0 {
		var err error
		legendBox, err = pass.legendSize(figEntries)
		if err != nil {
			return err
		}
		side, min := layout.Right, legendBox.W+figureGap
		switch f.legend {
		case LegendTop:
			side, min = layout.Top, legendBox.H+figureGap
		case LegendBottom:
			side, min = layout.Bottom, legendBox.H+figureGap
		case LegendLeft:
			side, min = layout.Left, legendBox.W+figureGap
		}
		bands = append(bands, layout.Band{
			ID: "fig.legend", Side: side, Min: min, Priority: layout.PriorityLegend,
		})
	}

	res, err := layout.Solve(layout.Request{
		Surface:     inner,
		Bands:       bands,
		Rows:        f.rows,
		Cols:        f.cols,
		RowWeights:  f.weights.rows,
		ColWeights:  f.weights.cols,
		Gap:         figureGap,
		ShrinkOrder: f.shrink,
	})
	if err != nil {
		return err
	}

	if f.title != "" {
		band := translate(res.Bands["fig.title"], offset)
		if err := pass.drawCentered(f.title, pass.th.TitleSize, band, pass.th.Palette.Text); err != nil {
			return err
		}
	}

	// Plots fill grid slots in declaration order unless pinned.
	slot := 0
	for i, bp := range pass.plots {
		row, col := slot/f.cols, slot%f.cols
		if bp.plot.hasCell {
			row, col = bp.plot.row, bp.plot.col
			if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
				return fmt.Errorf("plotive: plot %d pinned outside %dx%d grid", i, f.rows, f.cols)
			}
		} else {
			slot++
		}
		cell := translate(res.Cell(row, col), offset)
		if err := pass.renderPlot(bp, cell); err != nil {
			return err
		}
	}

	if len(figEntries) > 0 {
		band := translate(res.Bands["fig.legend"], offset)
		box := geom.XYWH(
			band.X+(band.W-legendBox.W)/2,
			band.Y+(band.H-legendBox.H)/2,
			legendBox.W, legendBox.H,
		)
		if err := pass.drawLegend(figEntries, box); err != nil {
			return err
		}
	}
	return nil
}

// figureLegendEntries collects named series across all plots,
// first occurrence of each label wins.
func (pass *renderPass) figureLegendEntries() []legendEntry {
	var out []legendEntry
	seen := map[string]bool{}
	for _, bp := range pass.plots {
		for i, bs := range bp.series {
			label := bs.src.Label()
			if label == "" || seen[label] {
				continue
			}
			seen[label] = true
			out = append(out, legendEntry{label: label, color: pass.colors[bp][i]})
		}
	}
	return out
}

// measure shapes s at the theme font and reports its size. Empty
// strings measure zero.
func (pass *renderPass) measure(s string, size float64) (geom.Size, error) {
	if s == "" {
		return geom.Size{}, nil
	}
	return pass.shaper.Measure(text.Request{Text: s, Family: pass.th.FontFamily, Size: size})
}

func (pass *renderPass) shape(s string, size float64) (*text.Layout, error) {
	return pass.shaper.Shape(text.Request{Text: s, Family: pass.th.FontFamily, Size: size})
}

// drawCentered draws a single line centered in rect.
func (pass *renderPass) drawCentered(s string, size float64, rect geom.Rect, c theme.RGBA) error {
	l, err := pass.shape(s, size)
	if err != nil {
		return err
	}
	origin := geom.Pt(
		rect.X+(rect.W-l.Advance)/2,
		rect.Y+(rect.H-l.Ascent-l.Descent)/2+l.Ascent,
	)
	pass.sur.GlyphRun(l, origin, c)
	return nil
}

func translate(r geom.Rect, by geom.Point) geom.Rect {
	return geom.XYWH(r.X+by.X, r.Y+by.Y, r.W, r.H)
}
