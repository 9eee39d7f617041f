package text

import (
	"github.com/go-text/typesetting/font"

	"github.com/plotive/plotive/geom"
)

// Glyph is a single positioned glyph inside a Run. Positions are in
// pixels relative to the run origin, which sits on the baseline at the
// left edge of the run.
type Glyph struct {
	// ID identifies the glyph inside the run's face.
	ID font.GID

	// Pos is the render position of the glyph, baseline-relative.
	Pos geom.Point

	// Advance is the horizontal pen advance contributed by this glyph.
	Advance float64

	// Cluster is the byte offset of the source rune cluster within
	// the original string.
	Cluster int
}

// Run is one shaped segment of text: a maximal stretch sharing a
// single face, direction and script. Runs never mutate after shaping.
type Run struct {
	// Face is the resolved font face for every glyph in the run.
	Face *font.Face

	// Size is the pixel size the glyphs were shaped at.
	Size float64

	// Glyphs holds positioned glyphs in visual order.
	Glyphs []Glyph

	// Advance is the total pen advance of the run.
	Advance float64

	// Ascent is the distance from the baseline to the top of the
	// line box, positive upward.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// line box, positive downward.
	Descent float64
}

// Layout is the result of shaping one logical string. It may contain
// several runs when the text mixes scripts or requires fallback faces.
type Layout struct {
	Runs []Run

	// Advance is the total pen advance across all runs.
	Advance float64

	// Ascent and Descent are the maxima over all runs, positive.
	Ascent  float64
	Descent float64
}

// Size reports the bounding box of the laid-out text as a geometry
// size: total advance by line height.
func (l *Layout) Size() geom.Size {
	return geom.Size{W: l.Advance, H: l.Ascent + l.Descent}
}
