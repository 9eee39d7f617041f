package text

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/plotive/plotive/geom"
)

// PathSink receives outline commands in pixel coordinates with the
// y axis pointing down.
type PathSink interface {
	MoveTo(p geom.Point)
	LineTo(p geom.Point)
	QuadTo(c, p geom.Point)
	CubeTo(c1, c2, p geom.Point)
	Close()
}

// AppendOutline writes the outline of one glyph of run into sink,
// placed at origin plus the glyph's position. Bitmap-only glyphs are
// skipped; axes stay untouched for those since plots draw no emoji.
func AppendOutline(sink PathSink, run *Run, g Glyph, origin geom.Point) {
	data := run.Face.GlyphData(g.ID)
	outline, ok := data.(font.GlyphOutline)
	if !ok {
		logger().Debug("glyph has no outline", "gid", g.ID)
		return
	}
	scale := run.Size / float64(run.Face.Upem())
	x := origin.X + g.Pos.X
	y := origin.Y + g.Pos.Y

	at := func(i int, s opentype.Segment) geom.Point {
		// Font units are y-up; rendering is y-down.
		return geom.Point{
			X: float64(s.Args[i].X)*scale + x,
			Y: -float64(s.Args[i].Y)*scale + y,
		}
	}
	open := false
	for _, s := range outline.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				sink.Close()
			}
			sink.MoveTo(at(0, s))
			open = true
		case opentype.SegmentOpLineTo:
			sink.LineTo(at(0, s))
		case opentype.SegmentOpQuadTo:
			sink.QuadTo(at(0, s), at(1, s))
		case opentype.SegmentOpCubeTo:
			sink.CubeTo(at(0, s), at(1, s), at(2, s))
		}
	}
	if open {
		sink.Close()
	}
}
