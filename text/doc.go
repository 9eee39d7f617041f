// Package text measures and shapes text for layout and rendering.
//
// Shaping is provided by go-text/typesetting's HarfBuzz implementation:
// input is segmented into script/direction/face runs (applying the
// Unicode bidirectional algorithm to mixed-direction text), each run is
// shaped into positioned glyphs, and the runs are merged back into a
// single Run with exact advance widths. Font selection and fallback go
// through a fontscan.FontMap seeded with embedded Latin Modern faces,
// optionally extended with system fonts.
//
// Measurement is pure: repeated calls with the same input yield
// identical metrics, which the layout engine relies on.
package text
