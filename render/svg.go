package render

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/plotive/plotive/geom"
	"github.com/plotive/plotive/text"
	"github.com/plotive/plotive/theme"
)

// SVG renders into a vector document. Text is emitted as filled glyph
// outlines so the output needs no fonts installed to view.
type SVG struct {
	canvas *svg.SVG
	ew     *errWriter
	w, h   int
}

var _ Surface = (*SVG)(nil)

// NewSVG starts a w by h document on out with a background rectangle.
func NewSVG(out io.Writer, w, h int, background theme.RGBA) *SVG {
	ew := &errWriter{w: out}
	s := &SVG{canvas: svg.New(ew), ew: ew, w: w, h: h}
	s.canvas.Start(w, h)
	s.canvas.Rect(0, 0, w, h, "fill:"+background.Hex())
	return s
}

// Size implements Surface.
func (s *SVG) Size() geom.Size {
	return geom.Size{W: float64(s.w), H: float64(s.h)}
}

// FillPath implements Surface.
func (s *SVG) FillPath(p *Path, c theme.RGBA) {
	if p.Empty() || c.A <= 0 {
		return
	}
	s.canvas.Path(pathData(p), fmt.Sprintf("fill:%s;fill-opacity:%s", c.Hex(), num(c.A)))
}

// StrokePath implements Surface.
func (s *SVG) StrokePath(p *Path, st Stroke) {
	if p.Empty() || st.Width <= 0 || st.Color.A <= 0 {
		return
	}
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%s;stroke-linejoin:round",
		st.Color.Hex(), num(st.Color.A), num(st.Width))
	if st.Dash != nil {
		parts := make([]string, len(st.Dash.Array))
		for i, l := range st.Dash.Array {
			parts[i] = num(l)
		}
		style += ";stroke-dasharray:" + strings.Join(parts, ",")
		if st.Dash.Offset != 0 {
			style += ";stroke-dashoffset:" + num(st.Dash.Offset)
		}
	}
	s.canvas.Path(pathData(p), style)
}

// GlyphRun implements Surface.
func (s *SVG) GlyphRun(l *text.Layout, origin geom.Point, c theme.RGBA) {
	fillGlyphs(s, l, origin, c)
}

// Flush implements Surface. It closes the document and reports any
// write error seen along the way.
func (s *SVG) Flush() error {
	s.canvas.End()
	return s.ew.err
}

// pathData serializes a path into an SVG "d" attribute.
func pathData(p *Path) string {
	var b strings.Builder
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case MoveTo:
			fmt.Fprintf(&b, "M%s %s", num(e.Point.X), num(e.Point.Y))
		case LineTo:
			fmt.Fprintf(&b, "L%s %s", num(e.Point.X), num(e.Point.Y))
		case QuadTo:
			fmt.Fprintf(&b, "Q%s %s %s %s",
				num(e.Control.X), num(e.Control.Y), num(e.Point.X), num(e.Point.Y))
		case CubeTo:
			fmt.Fprintf(&b, "C%s %s %s %s %s %s",
				num(e.Control1.X), num(e.Control1.Y),
				num(e.Control2.X), num(e.Control2.Y),
				num(e.Point.X), num(e.Point.Y))
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// num formats a coordinate compactly with stable precision.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// errWriter remembers the first write error so Flush can report it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}
