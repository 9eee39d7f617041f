package plotive

import (
	"errors"
	"fmt"
)

// Structural construction errors. Data-dependent failures surface
// later, at bind time, as *datasrc.SchemaError or
// *datasrc.LengthMismatchError.
var (
	// ErrNoPlots is returned by NewFigure without any plots.
	ErrNoPlots = errors.New("plotive: figure needs at least one plot")

	// ErrNoSeries is returned by NewPlot without any series.
	ErrNoSeries = errors.New("plotive: plot needs at least one series")
)

// AxisRefError reports a series or shared scale pointing at an axis
// that does not exist in its plot.
type AxisRefError struct {
	// Ref is the unresolved reference.
	Ref AxisRef

	// Axis is "x" or "y".
	Axis string
}

func (e *AxisRefError) Error() string {
	return fmt.Sprintf("plotive: no %s axis matches %s", e.Axis, e.Ref)
}

// SharedScaleError reports an unresolvable SharedScale chain.
type SharedScaleError struct {
	Axis   string
	Reason string
}

func (e *SharedScaleError) Error() string {
	return fmt.Sprintf("plotive: shared scale on axis %q: %s", e.Axis, e.Reason)
}
