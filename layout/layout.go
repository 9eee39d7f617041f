package layout

import (
	"fmt"

	"github.com/plotive/plotive/geom"
)

// Side places a band against one edge of the remaining area.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

func (s Side) horizontal() bool { return s == Left || s == Right }

// Priority ranks bands for shrinking under overflow. Lower values give
// way first.
type Priority int

const (
	PriorityTickLabels Priority = iota
	PriorityAxisTitles
	PriorityLegend
	PriorityTitle
)

// DefaultShrinkOrder releases tick label bands first and titles last.
func DefaultShrinkOrder() []Priority {
	return []Priority{PriorityTickLabels, PriorityAxisTitles, PriorityLegend, PriorityTitle}
}

// Band is one rectangular demand on an edge of the surface. Min is the
// band's extent along its axis (height for Top/Bottom, width for
// Left/Right); the band always spans the full cross extent left at
// carving time.
type Band struct {
	ID       string
	Side     Side
	Min      float64
	Priority Priority
}

// Request describes one layout solve.
type Request struct {
	// Surface is the target size in pixels.
	Surface geom.Size

	// Bands are carved from the surface in slice order, so callers
	// fix the packing order (figure title, figure legend, then
	// per-plot bands) by construction.
	Bands []Band

	// Rows and Cols shape the flexible cell grid. Zero means 1.
	Rows, Cols int

	// RowWeights and ColWeights divide the grid unevenly. Nil means
	// equal shares; otherwise the length must match Rows or Cols.
	RowWeights, ColWeights []float64

	// Gap is the spacing between adjacent grid cells.
	Gap float64

	// MinCell is the smallest acceptable cell size. Zero fields
	// default to 4 pixels.
	MinCell geom.Size

	// ShrinkOrder overrides DefaultShrinkOrder when non-nil.
	ShrinkOrder []Priority
}

// Result carries the solved rectangles. Band rectangles are keyed by
// the Band.ID from the request; Cells is indexed [row][col].
type Result struct {
	Bands map[string]geom.Rect
	Cells [][]geom.Rect
}

// Cell returns the solved rectangle of one grid cell.
func (r *Result) Cell(row, col int) geom.Rect {
	return r.Cells[row][col]
}

// Solve carves req.Bands from req.Surface and grids the remainder.
// Bands shrink by priority group when the surface is too small; if the
// cells still cannot reach MinCell, Solve returns an *OverflowError
// and no result.
func Solve(req Request) (*Result, error) {
	rows, cols := req.Rows, req.Cols
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	if req.RowWeights != nil && len(req.RowWeights) != rows {
		return nil, fmt.Errorf("layout: %d row weights for %d rows", len(req.RowWeights), rows)
	}
	if req.ColWeights != nil && len(req.ColWeights) != cols {
		return nil, fmt.Errorf("layout: %d col weights for %d cols", len(req.ColWeights), cols)
	}
	for _, b := range req.Bands {
		if b.Min < 0 {
			return nil, fmt.Errorf("layout: band %q has negative size %v", b.ID, b.Min)
		}
	}
	minCell := req.MinCell
	if minCell.W <= 0 {
		minCell.W = 4
	}
	if minCell.H <= 0 {
		minCell.H = 4
	}
	order := req.ShrinkOrder
	if order == nil {
		order = DefaultShrinkOrder()
	}

	// Resolved band sizes, possibly shrunk below Min.
	sizes := make([]float64, len(req.Bands))
	for i, b := range req.Bands {
		sizes[i] = b.Min
	}

	minGridW := float64(cols)*minCell.W + float64(cols-1)*req.Gap
	minGridH := float64(rows)*minCell.H + float64(rows-1)*req.Gap
	if err := shrinkAxis(req.Bands, sizes, true, req.Surface.W, minGridW, order); err != nil {
		return nil, err
	}
	if err := shrinkAxis(req.Bands, sizes, false, req.Surface.H, minGridH, order); err != nil {
		return nil, err
	}

	res := &Result{Bands: make(map[string]geom.Rect, len(req.Bands))}
	rem := geom.XYWH(0, 0, req.Surface.W, req.Surface.H)
	for i, b := range req.Bands {
		var r geom.Rect
		switch b.Side {
		case Top:
			r = geom.XYWH(rem.X, rem.Y, rem.W, sizes[i])
			rem.Y += sizes[i]
			rem.H -= sizes[i]
		case Bottom:
			r = geom.XYWH(rem.X, rem.MaxY()-sizes[i], rem.W, sizes[i])
			rem.H -= sizes[i]
		case Left:
			r = geom.XYWH(rem.X, rem.Y, sizes[i], rem.H)
			rem.X += sizes[i]
			rem.W -= sizes[i]
		case Right:
			r = geom.XYWH(rem.MaxX()-sizes[i], rem.Y, sizes[i], rem.H)
			rem.W -= sizes[i]
		default:
			return nil, fmt.Errorf("layout: band %q has invalid side %v", b.ID, b.Side)
		}
		res.Bands[b.ID] = r
	}

	res.Cells = gridCells(rem, rows, cols, req.RowWeights, req.ColWeights, req.Gap)
	return res, nil
}

// shrinkAxis reduces band sizes along one axis until the grid minimum
// fits. Bands of the same priority shrink proportionally to their
// current size, exhausting one priority group before touching the next.
func shrinkAxis(bands []Band, sizes []float64, horizontal bool, avail, minGrid float64, order []Priority) error {
	onAxis := func(i int) bool { return bands[i].Side.horizontal() == horizontal }

	total := 0.0
	for i := range bands {
		if onAxis(i) {
			total += sizes[i]
		}
	}
	deficit := total + minGrid - avail
	if deficit <= 0 {
		return nil
	}
	for _, p := range order {
		group := 0.0
		for i := range bands {
			if onAxis(i) && bands[i].Priority == p {
				group += sizes[i]
			}
		}
		if group == 0 {
			continue
		}
		cut := min(deficit, group)
		frac := cut / group
		for i := range bands {
			if onAxis(i) && bands[i].Priority == p {
				sizes[i] -= sizes[i] * frac
			}
		}
		deficit -= cut
		if deficit <= 0 {
			return nil
		}
	}
	axis := "height"
	if horizontal {
		axis = "width"
	}
	return &OverflowError{Axis: axis, Needed: minGrid, Available: minGrid - deficit}
}

// gridCells splits rem into a rows by cols grid with gap spacing,
// dividing each axis by the given weights.
func gridCells(rem geom.Rect, rows, cols int, rowWeights, colWeights []float64, gap float64) [][]geom.Rect {
	ys := splitSpan(rem.Y, rem.H, rows, rowWeights, gap)
	xs := splitSpan(rem.X, rem.W, cols, colWeights, gap)
	cells := make([][]geom.Rect, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]geom.Rect, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = geom.XYWH(xs[c][0], ys[r][0], xs[c][1], ys[r][1])
		}
	}
	return cells
}

// splitSpan divides [start, start+length] into n weighted segments
// separated by gap, returning (offset, size) pairs.
func splitSpan(start, length float64, n int, weights []float64, gap float64) [][2]float64 {
	content := length - float64(n-1)*gap
	if content < 0 {
		content = 0
	}
	totalW := 0.0
	for i := 0; i < n; i++ {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		totalW += w
	}
	if totalW <= 0 {
		totalW = float64(n)
	}
	out := make([][2]float64, n)
	pos := start
	for i := 0; i < n; i++ {
		w := 1.0
		if weights != nil && weights[i] > 0 {
			w = weights[i]
		} else if weights != nil {
			w = 0
		}
		size := content * w / totalW
		out[i] = [2]float64{pos, size}
		pos += size + gap
	}
	return out
}
