package plotive

import (
	"github.com/plotive/plotive/geom"
	"github.com/plotive/plotive/render"
)

// linePath connects pixel-space points according to the interpolation
// mode.
func linePath(pts []geom.Point, interp Interpolation) *render.Path {
	p := render.NewPath()
	if len(pts) == 0 {
		return p
	}
	if interp == Spline && len(pts) > 2 {
		splinePath(p, pts)
		return p
	}
	p.MoveTo(pts[0])
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		switch interp {
		case StepEarly:
			p.LineTo(geom.Pt(a.X, b.Y))
			p.LineTo(b)
		case StepMiddle:
			mid := (a.X + b.X) / 2
			p.LineTo(geom.Pt(mid, a.Y))
			p.LineTo(geom.Pt(mid, b.Y))
			p.LineTo(b)
		case StepLate:
			p.LineTo(geom.Pt(b.X, a.Y))
			p.LineTo(b)
		default:
			p.LineTo(b)
		}
	}
	return p
}

// splinePath draws a Catmull-Rom spline through pts as cubic segments.
// The curve passes through every input point.
func splinePath(p *render.Path, pts []geom.Point) {
	n := len(pts)
	at := func(i int) geom.Point {
		if i < 0 {
			return pts[0]
		}
		if i >= n {
			return pts[n-1]
		}
		return pts[i]
	}
	p.MoveTo(pts[0])
	for i := 0; i < n-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		c1 := p1.Add(p2.Sub(p0).Mul(1.0 / 6))
		c2 := p2.Sub(p3.Sub(p1).Mul(1.0 / 6))
		p.CubeTo(c1, c2, p2)
	}
}
