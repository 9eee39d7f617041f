package render

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/plotive/plotive/geom"
	"github.com/plotive/plotive/text"
	"github.com/plotive/plotive/theme"
)

var (
	white = theme.RGB(1, 1, 1)
	red   = theme.RGB(1, 0, 0)
	black = theme.RGB(0, 0, 0)
)

func TestPathRectBounds(t *testing.T) {
	p := NewPath()
	p.Rect(geom.XYWH(10, 20, 30, 40))
	if got := p.Bounds(); got != geom.XYWH(10, 20, 30, 40) {
		t.Errorf("bounds = %+v", got)
	}
	if n := len(p.Elements()); n != 5 {
		t.Errorf("element count = %d, want 5", n)
	}
}

func TestFlattenClosedSubpath(t *testing.T) {
	p := NewPath()
	p.Rect(geom.XYWH(0, 0, 10, 10))
	lines := p.Flatten()
	if len(lines) != 1 {
		t.Fatalf("subpath count = %d, want 1", len(lines))
	}
	pts := lines[0]
	if pts[0] != pts[len(pts)-1] {
		t.Errorf("closed subpath should end at its start: %v vs %v", pts[0], pts[len(pts)-1])
	}
}

func TestFlattenCurveWithinTolerance(t *testing.T) {
	p := NewPath()
	p.Circle(geom.Pt(50, 50), 40)
	for _, pts := range p.Flatten() {
		for _, pt := range pts {
			r := pt.Distance(geom.Pt(50, 50))
			if math.Abs(r-40) > 0.5 {
				t.Errorf("flattened point %v is %v from center, want ~40", pt, r)
			}
		}
	}
}

func TestApplyDash(t *testing.T) {
	line := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}
	spans := applyDash(line, NewDash(3, 2))
	if len(spans) != 2 {
		t.Fatalf("span count = %d, want 2", len(spans))
	}
	if got := spans[0][len(spans[0])-1].X; math.Abs(got-3) > 1e-9 {
		t.Errorf("first span ends at %v, want 3", got)
	}
	if got := spans[1][0].X; math.Abs(got-5) > 1e-9 {
		t.Errorf("second span starts at %v, want 5", got)
	}
	if got := spans[1][len(spans[1])-1].X; math.Abs(got-8) > 1e-9 {
		t.Errorf("second span ends at %v, want 8", got)
	}
}

func TestApplyDashOffset(t *testing.T) {
	line := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}
	spans := applyDash(line, NewDash(3, 2).WithOffset(3))
	// Offset 3 starts inside the gap, so the first span begins at 2.
	if got := spans[0][0].X; math.Abs(got-2) > 1e-9 {
		t.Errorf("first span starts at %v, want 2", got)
	}
}

func TestApplyDashNil(t *testing.T) {
	line := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}
	spans := applyDash(line, nil)
	if len(spans) != 1 || len(spans[0]) != 2 {
		t.Fatalf("nil dash should pass the line through, got %v", spans)
	}
	if NewDash() != nil || NewDash(0, 0) != nil {
		t.Error("empty patterns should collapse to nil")
	}
}

func TestRasterFill(t *testing.T) {
	r := NewRaster(40, 40, white)
	p := NewPath()
	p.Rect(geom.XYWH(10, 10, 20, 20))
	r.FillPath(p, red)
	if got := r.Image().RGBAAt(20, 20); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("inside pixel = %v, want red", got)
	}
	if got := r.Image().RGBAAt(5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("outside pixel = %v, want white", got)
	}
}

func TestRasterStroke(t *testing.T) {
	r := NewRaster(40, 40, white)
	p := NewPath()
	p.Polyline([]geom.Point{geom.Pt(0, 20), geom.Pt(40, 20)})
	r.StrokePath(p, Stroke{Width: 4, Color: black})
	if got := r.Image().RGBAAt(20, 20); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("on-line pixel = %v, want black", got)
	}
	if got := r.Image().RGBAAt(20, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("off-line pixel = %v, want white", got)
	}
}

func TestRasterStrokeZeroWidth(t *testing.T) {
	r := NewRaster(10, 10, white)
	p := NewPath()
	p.Polyline([]geom.Point{geom.Pt(0, 5), geom.Pt(10, 5)})
	r.StrokePath(p, Stroke{Width: 0, Color: black})
	if got := r.Image().RGBAAt(5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("zero-width stroke drew pixel %v", got)
	}
}

func TestRasterDeterministicPNG(t *testing.T) {
	draw := func() []byte {
		r := NewRaster(64, 48, white)
		p := NewPath()
		p.Circle(geom.Pt(32, 24), 15)
		r.FillPath(p, red)
		q := NewPath()
		q.Polyline([]geom.Point{geom.Pt(0, 0), geom.Pt(64, 48)})
		r.StrokePath(q, Stroke{Width: 2, Color: black, Dash: NewDash(4, 2)})
		if err := r.Flush(); err != nil {
			t.Fatalf("Flush: %v", err)
		}
		var buf bytes.Buffer
		if err := r.WritePNG(&buf); err != nil {
			t.Fatalf("WritePNG: %v", err)
		}
		return buf.Bytes()
	}
	if !bytes.Equal(draw(), draw()) {
		t.Error("identical draw calls produced different PNG bytes")
	}
}

func TestSVGOutput(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 200, 100, white)
	p := NewPath()
	p.Rect(geom.XYWH(10, 10, 50, 30))
	s.FillPath(p, red)
	q := NewPath()
	q.Polyline([]geom.Point{geom.Pt(0, 50), geom.Pt(200, 50)})
	s.StrokePath(q, Stroke{Width: 1.5, Color: black, Dash: NewDash(5, 3)})
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<svg", "</svg>",
		`width="200"`, `height="100"`,
		"fill:#ff0000",
		"stroke:#000000", "stroke-width:1.5", "stroke-dasharray:5,3",
		"M10 10", "Z",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSVGFlushReportsWriteError(t *testing.T) {
	s := NewSVG(failWriter{}, 10, 10, white)
	if err := s.Flush(); err == nil {
		t.Fatal("expected write error from Flush")
	}
}

func TestGlyphRunDrawsPixels(t *testing.T) {
	shaper, err := text.NewShaper()
	if err != nil {
		t.Fatalf("NewShaper: %v", err)
	}
	layout, err := shaper.Shape(text.Request{Text: "Ag", Size: 24})
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	r := NewRaster(100, 50, white)
	r.GlyphRun(layout, geom.Pt(10, 35), black)
	inked := 0
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			if r.Image().RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("glyph run drew no pixels")
	}
}

func TestSurfacesAgreeOnSize(t *testing.T) {
	r := NewRaster(320, 240, white)
	var buf bytes.Buffer
	s := NewSVG(&buf, 320, 240, white)
	if r.Size() != s.Size() {
		t.Errorf("raster %v vs svg %v", r.Size(), s.Size())
	}
}
