package render

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/plotive/plotive/geom"
	"github.com/plotive/plotive/text"
	"github.com/plotive/plotive/theme"
)

// Raster renders into an in-memory RGBA image and encodes PNG.
// Output bytes are a pure function of the draw calls: no timestamps,
// no randomness.
type Raster struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

var _ Surface = (*Raster)(nil)

// NewRaster allocates a w by h surface filled with the background
// color.
func NewRaster(w, h int, background theme.RGBA) *Raster {
	r := &Raster{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		ras: vector.NewRasterizer(w, h),
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(background.Color()), image.Point{}, draw.Src)
	return r
}

// Size implements Surface.
func (r *Raster) Size() geom.Size {
	b := r.img.Bounds()
	return geom.Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Image exposes the backing image. The pixels are final only after
// Flush.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// FillPath implements Surface.
func (r *Raster) FillPath(p *Path, c theme.RGBA) {
	if p.Empty() || c.A <= 0 {
		return
	}
	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case MoveTo:
			r.ras.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case LineTo:
			r.ras.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case QuadTo:
			r.ras.QuadTo(float32(e.Control.X), float32(e.Control.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case CubeTo:
			r.ras.CubeTo(float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case Close:
			r.ras.ClosePath()
		}
	}
	r.ras.Draw(r.img, b, image.NewUniform(c.Color()), image.Point{})
}

// StrokePath implements Surface. Curves are flattened, dashes applied,
// and each span filled as a thick outline with round joins and butt
// caps.
func (r *Raster) StrokePath(p *Path, s Stroke) {
	if s.Width <= 0 || s.Color.A <= 0 {
		return
	}
	outline := NewPath()
	for _, line := range p.Flatten() {
		for _, span := range applyDash(line, s.Dash) {
			appendStrokeOutline(outline, span, s.Width)
		}
	}
	r.FillPath(outline, s.Color)
}

// GlyphRun implements Surface.
func (r *Raster) GlyphRun(l *text.Layout, origin geom.Point, c theme.RGBA) {
	fillGlyphs(r, l, origin, c)
}

// Flush implements Surface.
func (r *Raster) Flush() error {
	return nil
}

// WritePNG encodes the surface to w. Call after Flush.
func (r *Raster) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

// appendStrokeOutline thickens an open polyline into fillable shapes:
// one quad per segment plus a round join disc at each interior vertex.
// Overlaps are harmless under the nonzero winding rule.
func appendStrokeOutline(dst *Path, pts []geom.Point, width float64) {
	if len(pts) < 2 {
		return
	}
	half := width / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		if d.Length() == 0 {
			continue
		}
		n := geom.Pt(-d.Y, d.X).Normalize().Mul(half)
		dst.MoveTo(a.Add(n))
		dst.LineTo(b.Add(n))
		dst.LineTo(b.Sub(n))
		dst.LineTo(a.Sub(n))
		dst.Close()
		if i < len(pts)-1 {
			dst.Circle(b, half)
		}
	}
}

// GlyphPath converts a whole layout into one outline path with its
// baseline origin at origin. Rotated or otherwise transformed text
// goes through here plus Path.Transform.
func GlyphPath(l *text.Layout, origin geom.Point) *Path {
	p := NewPath()
	pen := origin
	for i := range l.Runs {
		run := &l.Runs[i]
		for _, g := range run.Glyphs {
			text.AppendOutline(p, run, g, pen)
		}
		pen.X += run.Advance
	}
	return p
}

// fillGlyphs draws a layout as filled outlines. Shared by the raster
// and SVG surfaces so both place glyphs identically.
func fillGlyphs(s Surface, l *text.Layout, origin geom.Point, c theme.RGBA) {
	s.FillPath(GlyphPath(l, origin), c)
}
