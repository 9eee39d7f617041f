package layout

import "fmt"

// OverflowError reports that the surface is too small for the grid
// cells even after every band shrank to nothing.
type OverflowError struct {
	// Axis is "width" or "height".
	Axis string

	// Needed is the minimum grid extent along Axis; Available is
	// what remained for it.
	Needed    float64
	Available float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("layout: surface %s overflow: grid needs %.4g, %.4g available",
		e.Axis, e.Needed, e.Available)
}
