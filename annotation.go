package plotive

import "github.com/plotive/plotive/geom"

// Annotation marks up a plot in data-space coordinates. The variants
// are LineAnnotation, ArrowAnnotation and LabelAnnotation. Annotations
// draw above series geometry unless Below is set.
type Annotation interface {
	isAnnotation()
	below() bool
}

type lineKind int

const (
	lineHorizontal lineKind = iota
	lineVertical
	lineSlope
	lineSegment
)

// LineAnnotation is an infinite or segment line. Construct with HLine,
// VLine, SlopeLine or SegmentLine, which fix the variant.
type LineAnnotation struct {
	kind   lineKind
	at     float64
	origin geom.Point
	slope  float64
	p0, p1 geom.Point

	// Style strokes the line; zero fields resolve from the theme.
	Style Style

	// Below draws the line under the series geometry.
	Below bool
}

func (LineAnnotation) isAnnotation() {}
func (a LineAnnotation) below() bool { return a.Below }

// HLine is a horizontal line at data y.
func HLine(y float64) LineAnnotation {
	return LineAnnotation{kind: lineHorizontal, at: y}
}

// VLine is a vertical line at data x.
func VLine(x float64) LineAnnotation {
	return LineAnnotation{kind: lineVertical, at: x}
}

// SlopeLine passes through origin with the given slope, clipped to the
// plot area.
func SlopeLine(origin geom.Point, slope float64) LineAnnotation {
	return LineAnnotation{kind: lineSlope, origin: origin, slope: slope}
}

// SegmentLine connects two data points.
func SegmentLine(p0, p1 geom.Point) LineAnnotation {
	return LineAnnotation{kind: lineSegment, p0: p0, p1: p1}
}

// Styled returns a copy with the given style.
func (a LineAnnotation) Styled(s Style) LineAnnotation {
	a.Style = s
	return a
}

// Beneath returns a copy drawn under the series geometry.
func (a LineAnnotation) Beneath() LineAnnotation {
	a.Below = true
	return a
}

// ArrowAnnotation points from Origin along Delta, both in data space.
type ArrowAnnotation struct {
	Origin geom.Point
	Delta  geom.Point

	// HeadSize is the arrowhead length in pixels; zero means 8.
	HeadSize float64

	Style Style
	Below bool
}

func (ArrowAnnotation) isAnnotation() {}
func (a ArrowAnnotation) below() bool { return a.Below }

// Anchor names the corner of a label placed at its anchor point.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorCenter
)

// LabelAnnotation is a text label at a data point, optionally framed.
type LabelAnnotation struct {
	At   geom.Point
	Text string

	// Anchor is the label corner pinned to At.
	Anchor Anchor

	// Frame draws a filled, stroked box behind the text.
	Frame bool

	// Angle rotates the label counterclockwise, in degrees.
	Angle float64

	Style Style
	Below bool
}

func (LabelAnnotation) isAnnotation() {}
func (a LabelAnnotation) below() bool { return a.Below }
