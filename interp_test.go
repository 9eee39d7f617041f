package plotive

import (
	"testing"

	"github.com/plotive/plotive/geom"
	"github.com/plotive/plotive/render"
)

func pathPoints(t *testing.T, p *render.Path) []geom.Point {
	t.Helper()
	var pts []geom.Point
	for _, e := range p.Elements() {
		switch el := e.(type) {
		case render.MoveTo:
			pts = append(pts, el.Point)
		case render.LineTo:
			pts = append(pts, el.Point)
		default:
			t.Fatalf("unexpected element %T", e)
		}
	}
	return pts
}

func TestLinePathStepModes(t *testing.T) {
	in := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 4)}

	tests := []struct {
		interp Interpolation
		want   []geom.Point
	}{
		{Linear, []geom.Point{geom.Pt(0, 0), geom.Pt(10, 4)}},
		{StepEarly, []geom.Point{geom.Pt(0, 0), geom.Pt(0, 4), geom.Pt(10, 4)}},
		{StepMiddle, []geom.Point{geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(5, 4), geom.Pt(10, 4)}},
		{StepLate, []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 4)}},
	}
	for _, tt := range tests {
		got := pathPoints(t, linePath(in, tt.interp))
		if len(got) != len(tt.want) {
			t.Errorf("%v: %d points, want %d", tt.interp, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v: point %d = %v, want %v", tt.interp, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSplinePassesThroughPoints(t *testing.T) {
	in := []geom.Point{geom.Pt(0, 0), geom.Pt(5, 8), geom.Pt(10, 2), geom.Pt(15, 6)}
	p := linePath(in, Spline)

	els := p.Elements()
	if len(els) != len(in) {
		t.Fatalf("got %d elements, want %d (MoveTo + one cubic per segment)", len(els), len(in))
	}
	mv, ok := els[0].(render.MoveTo)
	if !ok || mv.Point != in[0] {
		t.Fatalf("first element = %#v, want MoveTo %v", els[0], in[0])
	}
	for i, e := range els[1:] {
		c, ok := e.(render.CubeTo)
		if !ok {
			t.Fatalf("element %d is %T, want CubeTo", i+1, e)
		}
		if c.Point != in[i+1] {
			t.Errorf("segment %d ends at %v, want %v", i, c.Point, in[i+1])
		}
	}
}

func TestLinePathEmpty(t *testing.T) {
	if p := linePath(nil, Linear); !p.Empty() {
		t.Error("expected empty path for no points")
	}
}
