// Package layout solves figure layout as a deterministic constraint-box
// pass. Callers declare bands (titles, legends, axis bands, tick bands)
// around a flexible cell grid; Solve carves the bands from the surface
// in declaration order and divides the remainder among the cells.
//
// When the bands' minimum sizes exceed the surface, Solve shrinks them
// group by group following a configurable priority order instead of
// failing, and returns an *OverflowError only when the cells themselves
// cannot fit. Identical inputs always produce identical rectangles.
package layout
