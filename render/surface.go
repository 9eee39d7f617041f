package render

import (
	"github.com/plotive/plotive/geom"
	"github.com/plotive/plotive/text"
	"github.com/plotive/plotive/theme"
)

// Surface is the drawing capability set every backend provides.
// Surfaces execute draw calls verbatim: rectangles, colors and glyph
// positions arrive fully resolved and are never adjusted here.
type Surface interface {
	// Size reports the drawable area in pixels.
	Size() geom.Size

	// FillPath fills p with c using the nonzero winding rule.
	FillPath(p *Path, c theme.RGBA)

	// StrokePath strokes p's outline.
	StrokePath(p *Path, s Stroke)

	// GlyphRun draws shaped text with its origin on the baseline at
	// the left edge of the first run.
	GlyphRun(l *text.Layout, origin geom.Point, c theme.RGBA)

	// Flush completes the surface's output. No draw calls may follow.
	Flush() error
}
