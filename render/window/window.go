// Package window presents rendered figures in an interactive window.
//
// The window runs the platform event loop on the calling goroutine and
// blocks until the user closes it or presses Escape. Rendering happens
// before the window opens; the loop only re-uploads the finished pixels
// on paint events.
package window

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
)

// Show opens a window titled title displaying img and blocks until it
// closes. It must run on the main goroutine; some platforms reject
// window creation from anywhere else.
func Show(img image.Image, title string) error {
	var loopErr error
	driver.Main(func(s screen.Screen) {
		loopErr = show(s, img, title)
	})
	return loopErr
}

func show(s screen.Screen, img image.Image, title string) error {
	bounds := img.Bounds()
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Title:  title,
	})
	if err != nil {
		return fmt.Errorf("window: create: %w", err)
	}
	defer w.Release()

	buf, err := s.NewBuffer(bounds.Size())
	if err != nil {
		return fmt.Errorf("window: buffer: %w", err)
	}
	defer buf.Release()
	draw.Draw(buf.RGBA(), buf.Bounds(), img, bounds.Min, draw.Src)

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}
		case key.Event:
			if e.Code == key.CodeEscape && e.Direction == key.DirPress {
				return nil
			}
		case paint.Event:
			w.Upload(image.Point{}, buf, buf.Bounds())
			w.Publish()
		case error:
			return fmt.Errorf("window: event loop: %w", e)
		}
	}
}
