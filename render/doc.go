// Package render draws resolved figures onto concrete surfaces.
//
// A Surface exposes a small capability set: fill a path, stroke a path,
// draw a glyph run, and flush. The raster surface rasterizes into an
// in-memory image and encodes PNG; the SVG surface writes a vector
// document. Both produce the same geometry and colors for the same
// draw calls, and neither makes layout decisions of its own.
//
// Surfaces are not safe for concurrent use; render each figure on its
// own surface.
package render
