// Package plotive is a declarative 2-D plotting library for Go.
//
// # Overview
//
// Figures are immutable value trees: plots hold series, axes and
// annotations, and nothing draws until a data source is bound at
// render time. A single render call resolves columns, computes scales
// and ticks, measures text, solves the layout, applies the theme and
// draws onto the chosen surface.
//
// # Quick Start
//
//	import (
//		"github.com/plotive/plotive"
//		"github.com/plotive/plotive/datasrc"
//	)
//
//	plot, _ := plotive.NewPlot([]plotive.Series{
//		plotive.Line{X: plotive.ColRef("x"), Y: plotive.ColRef("y"), Name: "sin(x)"},
//	})
//	fig, _ := plotive.NewFigure([]*plotive.Plot{plot},
//		plotive.WithTitle("Sine"),
//		plotive.WithTheme("mocha"),
//	)
//	err := fig.SavePNG("sine.png", datasrc.Columns{"x": xs, "y": ys})
//
// # Validation
//
// Validation runs in two passes. Structure (at least one plot, one
// series, resolvable axis references) fails at construction; data
// (column names, column lengths) fails at render, when the source is
// bound. Renders either complete or fail with a structured error and
// produce no partial output.
//
// # Surfaces
//
// The same figure renders to PNG (SavePNG), SVG (SaveSVG), an
// interactive window (Show), or any render.Surface (RenderTo). Output
// is deterministic: identical figures and data produce identical
// bytes.
package plotive
