package text

import "github.com/plotive/plotive/geom"

// Measure shapes req and reports its bounding size without retaining
// the layout. Layout passes use this to reserve space for labels
// before anything is drawn.
func (s *Shaper) Measure(req Request) (geom.Size, error) {
	layout, err := s.Shape(req)
	if err != nil {
		return geom.Size{}, err
	}
	return layout.Size(), nil
}
