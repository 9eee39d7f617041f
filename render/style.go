package render

import (
	"math"

	"github.com/plotive/plotive/theme"
)

// Dash is an alternating on/off pattern for stroked lines. An
// odd-length Array is logically duplicated to make the cycle even, so
// NewDash(5) means 5 on, 5 off.
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash builds a dash pattern from alternating lengths. It returns
// nil when no positive length is given, which strokes solid.
func NewDash(lengths ...float64) *Dash {
	any := false
	for _, l := range lengths {
		if l > 0 {
			any = true
			break
		}
	}
	if !any {
		return nil
	}
	arr := make([]float64, len(lengths))
	for i, l := range lengths {
		arr[i] = math.Abs(l)
	}
	return &Dash{Array: arr}
}

// WithOffset returns a copy of the dash starting offset units into the
// pattern cycle.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// cycle returns the even-length pattern.
func (d *Dash) cycle() []float64 {
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	out := make([]float64, 0, 2*len(d.Array))
	out = append(out, d.Array...)
	return append(out, d.Array...)
}

// length returns the total extent of one pattern cycle.
func (d *Dash) length() float64 {
	total := 0.0
	for _, l := range d.cycle() {
		total += l
	}
	return total
}

// normalizedOffset folds Offset into [0, cycle length).
func (d *Dash) normalizedOffset() float64 {
	cl := d.length()
	if cl <= 0 {
		return 0
	}
	off := math.Mod(d.Offset, cl)
	if off < 0 {
		off += cl
	}
	return off
}

// Stroke styles a stroked path.
type Stroke struct {
	// Width is the line width in pixels; nonpositive widths draw
	// nothing.
	Width float64

	// Color is the stroke color.
	Color theme.RGBA

	// Dash is nil for solid lines.
	Dash *Dash
}
