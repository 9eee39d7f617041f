package plotive

import (
	"bytes"
	"fmt"
	"os"

	"github.com/plotive/plotive/datasrc"
	"github.com/plotive/plotive/render"
	"github.com/plotive/plotive/render/window"
)

// RenderTo draws the figure onto any surface and flushes it. The
// surface's size should match the figure's; the figure draws into
// whatever area the surface reports.
func (f *Figure) RenderTo(sur render.Surface, src datasrc.Source) error {
	if err := f.renderTo(sur, src); err != nil {
		return err
	}
	return sur.Flush()
}

// rasterize renders the figure onto a fresh raster surface.
func (f *Figure) rasterize(src datasrc.Source) (*render.Raster, error) {
	th, err := f.resolveTheme()
	if err != nil {
		return nil, err
	}
	sur := render.NewRaster(int(f.size.W), int(f.size.H), th.Palette.Background)
	if err := f.renderTo(sur, src); err != nil {
		return nil, err
	}
	if err := sur.Flush(); err != nil {
		return nil, err
	}
	return sur, nil
}

// SavePNG renders the figure and writes a PNG file. Rendering completes
// in memory before the file is touched, so a failed render leaves no
// partial output behind.
func (f *Figure) SavePNG(path string, src datasrc.Source) error {
	sur, err := f.rasterize(src)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := sur.WritePNG(&buf); err != nil {
		return fmt.Errorf("plotive: encode %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// SaveSVG renders the figure and writes an SVG file, with the same
// no-partial-output guarantee as SavePNG.
func (f *Figure) SaveSVG(path string, src datasrc.Source) error {
	th, err := f.resolveTheme()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	sur := render.NewSVG(&buf, int(f.size.W), int(f.size.H), th.Palette.Background)
	if err := f.renderTo(sur, src); err != nil {
		return err
	}
	if err := sur.Flush(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Show renders the figure and displays it in a window, blocking until
// the window closes. Must run on the main goroutine.
func (f *Figure) Show(src datasrc.Source) error {
	sur, err := f.rasterize(src)
	if err != nil {
		return err
	}
	title := f.title
	if title == "" {
		title = "plotive"
	}
	return window.Show(sur.Image(), title)
}
