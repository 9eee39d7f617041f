package render

import (
	"math"

	"github.com/plotive/plotive/geom"
)

// PathElement is a single command in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point geom.Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point geom.Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control geom.Point
	Point   geom.Point
}

func (QuadTo) isPathElement() {}

// CubeTo draws a cubic Bezier curve.
type CubeTo struct {
	Control1 geom.Point
	Control2 geom.Point
	Point    geom.Point
}

func (CubeTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of drawing commands. The zero value is an empty
// path ready for use. Path satisfies text.PathSink, so glyph outlines
// append directly.
type Path struct {
	elements []PathElement
	start    geom.Point
	current  geom.Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt geom.Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line from the current point to pt.
func (p *Path) LineTo(pt geom.Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic curve with control point c.
func (p *Path) QuadTo(c, pt geom.Point) {
	p.elements = append(p.elements, QuadTo{Control: c, Point: pt})
	p.current = pt
}

// CubeTo draws a cubic curve with control points c1 and c2.
func (p *Path) CubeTo(c1, c2, pt geom.Point) {
	p.elements = append(p.elements, CubeTo{Control1: c1, Control2: c2, Point: pt})
	p.current = pt
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements exposes the recorded commands.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty reports whether the path has no commands.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// Rect appends a closed rectangular subpath.
func (p *Path) Rect(r geom.Rect) {
	p.MoveTo(geom.Pt(r.X, r.Y))
	p.LineTo(geom.Pt(r.MaxX(), r.Y))
	p.LineTo(geom.Pt(r.MaxX(), r.MaxY()))
	p.LineTo(geom.Pt(r.X, r.MaxY()))
	p.Close()
}

// circleKappa is the cubic control distance approximating a quarter
// circle.
const circleKappa = 0.5522847498307936

// Circle appends a closed circular subpath of radius r around c.
func (p *Path) Circle(c geom.Point, r float64) {
	k := r * circleKappa
	p.MoveTo(geom.Pt(c.X+r, c.Y))
	p.CubeTo(geom.Pt(c.X+r, c.Y+k), geom.Pt(c.X+k, c.Y+r), geom.Pt(c.X, c.Y+r))
	p.CubeTo(geom.Pt(c.X-k, c.Y+r), geom.Pt(c.X-r, c.Y+k), geom.Pt(c.X-r, c.Y))
	p.CubeTo(geom.Pt(c.X-r, c.Y-k), geom.Pt(c.X-k, c.Y-r), geom.Pt(c.X, c.Y-r))
	p.CubeTo(geom.Pt(c.X+k, c.Y-r), geom.Pt(c.X+r, c.Y-k), geom.Pt(c.X+r, c.Y))
	p.Close()
}

// Polyline appends an open subpath through pts.
func (p *Path) Polyline(pts []geom.Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
}

// flattenTolerance bounds the chord error of curve flattening.
const flattenTolerance = 0.1

// Flatten converts the path into polylines, one per subpath, with
// curves subdivided to within flattenTolerance. Closed subpaths repeat
// their first point at the end.
func (p *Path) Flatten() [][]geom.Point {
	var out [][]geom.Point
	var cur []geom.Point
	var start geom.Point
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	last := geom.Point{}
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			flush()
			cur = append(cur, e.Point)
			start, last = e.Point, e.Point
		case LineTo:
			cur = append(cur, e.Point)
			last = e.Point
		case QuadTo:
			cur = appendQuad(cur, last, e.Control, e.Point)
			last = e.Point
		case CubeTo:
			cur = appendCube(cur, last, e.Control1, e.Control2, e.Point)
			last = e.Point
		case Close:
			if len(cur) > 0 && last != start {
				cur = append(cur, start)
			}
			flush()
			last = start
		}
	}
	flush()
	return out
}

// curveSteps picks a uniform subdivision count from the control
// polygon length so the chord error stays within tol.
func curveSteps(polyLen, tol float64) int {
	n := int(math.Ceil(math.Sqrt(polyLen / (4 * tol))))
	if n < 1 {
		n = 1
	}
	if n > 64 {
		n = 64
	}
	return n
}

func appendQuad(dst []geom.Point, p0, c, p1 geom.Point) []geom.Point {
	l := p0.Distance(c) + c.Distance(p1)
	n := curveSteps(l, flattenTolerance)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		a := p0.Lerp(c, t)
		b := c.Lerp(p1, t)
		dst = append(dst, a.Lerp(b, t))
	}
	return dst
}

func appendCube(dst []geom.Point, p0, c1, c2, p1 geom.Point) []geom.Point {
	l := p0.Distance(c1) + c1.Distance(c2) + c2.Distance(p1)
	n := curveSteps(l, flattenTolerance)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		a := p0.Lerp(c1, t)
		b := c1.Lerp(c2, t)
		c := c2.Lerp(p1, t)
		ab := a.Lerp(b, t)
		bc := b.Lerp(c, t)
		dst = append(dst, ab.Lerp(bc, t))
	}
	return dst
}

// Transform returns a copy of the path with every point mapped
// through f.
func (p *Path) Transform(f func(geom.Point) geom.Point) *Path {
	out := NewPath()
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			out.MoveTo(f(e.Point))
		case LineTo:
			out.LineTo(f(e.Point))
		case QuadTo:
			out.QuadTo(f(e.Control), f(e.Point))
		case CubeTo:
			out.CubeTo(f(e.Control1), f(e.Control2), f(e.Point))
		case Close:
			out.Close()
		}
	}
	return out
}

// RotateAround maps points by angle radians around center, clockwise
// in screen coordinates.
func RotateAround(center geom.Point, angle float64) func(geom.Point) geom.Point {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return func(pt geom.Point) geom.Point {
		d := pt.Sub(center)
		return geom.Pt(center.X+d.X*cos-d.Y*sin, center.Y+d.X*sin+d.Y*cos)
	}
}

// Bounds returns the bounding rectangle of the path's anchor and
// control points. Curves may bow slightly inside it, never outside.
func (p *Path) Bounds() geom.Rect {
	first := true
	var minX, minY, maxX, maxY float64
	add := func(pt geom.Point) {
		if first {
			minX, maxX = pt.X, pt.X
			minY, maxY = pt.Y, pt.Y
			first = false
			return
		}
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubeTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	if first {
		return geom.Rect{}
	}
	return geom.XYWH(minX, minY, maxX-minX, maxY-minY)
}
