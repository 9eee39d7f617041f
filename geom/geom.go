// Package geom provides the small geometric value types shared by the
// figure model, the layout engine, and the render surfaces.
//
// All coordinates use standard computer graphics conventions: the origin
// is at the top-left, X increases to the right and Y increases downward.
package geom

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{X: 0, Y: 0}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Size holds a width and height in pixels.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle defined by its top-left corner
// and its dimensions.
type Rect struct {
	X, Y, W, H float64
}

// XYWH creates a Rect from position and dimensions.
func XYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset returns the rectangle shrunk by the given padding on all sides.
func (r Rect) Inset(p Padding) Rect {
	return Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.Left - p.Right,
		H: r.H - p.Top - p.Bottom,
	}
}

// Overlaps reports whether two rectangles share interior area.
// Rectangles that only touch at an edge do not overlap.
func (r Rect) Overlaps(s Rect) bool {
	if r.IsEmpty() || s.IsEmpty() {
		return false
	}
	return r.X < s.MaxX() && s.X < r.MaxX() && r.Y < s.MaxY() && s.Y < r.MaxY()
}

// Contains reports whether the point lies inside the rectangle,
// including its edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Padding holds per-side inner spacing in pixels.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Even creates a padding with the same value on all four sides.
func Even(p float64) Padding {
	return Padding{Top: p, Right: p, Bottom: p, Left: p}
}

// Center creates a padding from a vertical and a horizontal value.
func Center(v, h float64) Padding {
	return Padding{Top: v, Right: h, Bottom: v, Left: h}
}

// Horizontal returns the total horizontal padding (left + right).
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns the total vertical padding (top + bottom).
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }
