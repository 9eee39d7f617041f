// Package scales implements the resolved axis scales that map data
// coordinates onto the unit interval. The figure model only declares a
// scale strategy (auto, linear, log, shared); binding a data source
// resolves that strategy into one of the concrete scales here.
package scales

import (
	"fmt"
	"math"
)

// Scale maps data values onto [0, 1] and back. The mapping must be
// strictly monotonic over the scale's domain so tick positions and
// rendered geometry stay consistent.
type Scale interface {
	// Normalize maps a data value to [0, 1]. Values outside the domain
	// map outside the unit interval; callers clip where needed.
	Normalize(v float64) float64

	// Denormalize is the inverse of Normalize.
	Denormalize(t float64) float64

	// Domain returns the lower and upper bounds of the scale.
	Domain() (min, max float64)
}

// Linear is a linear scale over [Min, Max].
type Linear struct {
	Min, Max float64
}

// NewLinear creates a linear scale. A degenerate domain (min == max)
// is widened by one unit in both directions so rendering a constant
// series still produces a usable axis.
func NewLinear(min, max float64) Linear {
	if min == max {
		min, max = min-1, max+1
	}
	return Linear{Min: min, Max: max}
}

// Normalize implements Scale.
func (s Linear) Normalize(v float64) float64 {
	return (v - s.Min) / (s.Max - s.Min)
}

// Denormalize implements Scale.
func (s Linear) Denormalize(t float64) float64 {
	return s.Min + t*(s.Max-s.Min)
}

// Domain implements Scale.
func (s Linear) Domain() (float64, float64) { return s.Min, s.Max }

// Log is a logarithmic scale over [Min, Max] with the given base.
type Log struct {
	Base     float64
	Min, Max float64
}

// NewLog creates a logarithmic scale. The domain must be strictly
// positive and the base must be greater than 1.
func NewLog(base, min, max float64) (Log, error) {
	if base <= 1 {
		return Log{}, fmt.Errorf("scales: log base must be > 1, got %v", base)
	}
	if min <= 0 || max <= 0 {
		return Log{}, fmt.Errorf("scales: log domain must be positive, got [%v, %v]", min, max)
	}
	if min == max {
		min, max = min/base, max*base
	}
	return Log{Base: base, Min: min, Max: max}, nil
}

// Normalize implements Scale.
func (s Log) Normalize(v float64) float64 {
	lmin := math.Log(s.Min)
	lmax := math.Log(s.Max)
	return (math.Log(v) - lmin) / (lmax - lmin)
}

// Denormalize implements Scale.
func (s Log) Denormalize(t float64) float64 {
	lmin := math.Log(s.Min)
	lmax := math.Log(s.Max)
	return math.Exp(lmin + t*(lmax-lmin))
}

// Domain implements Scale.
func (s Log) Domain() (float64, float64) { return s.Min, s.Max }

// PadDomain returns the domain of s expanded by frac of its span on
// both ends, in normalized space. Used for the automatic scale so data
// does not touch the plot frame.
func PadDomain(s Scale, frac float64) Scale {
	switch sc := s.(type) {
	case Linear:
		span := sc.Max - sc.Min
		return Linear{Min: sc.Min - span*frac, Max: sc.Max + span*frac}
	case Log:
		lmin, lmax := math.Log(sc.Min), math.Log(sc.Max)
		span := lmax - lmin
		return Log{
			Base: sc.Base,
			Min:  math.Exp(lmin - span*frac),
			Max:  math.Exp(lmax + span*frac),
		}
	default:
		return s
	}
}
