// Package ticks implements tick locators and tick label formatters for
// plot axes.
//
// A Locator chooses tick positions inside a data range; a Formatter
// turns those positions into labels. Both are pure: the same inputs
// always produce the same ticks and labels. Locators that search over
// candidate spacings use the level-search machinery from
// go-moremath/scale rather than ad-hoc loops.
package ticks

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// funcTicker adapts spacing closures to the scale.Ticker interface
// that FindLevel searches over.
type funcTicker struct {
	count func(level int) int
	at    func(level int) []float64
}

func (t funcTicker) CountTicks(level int) int           { return t.count(level) }
func (t funcTicker) TicksAtLevel(level int) interface{} { return t.at(level) }

// Locator computes major tick positions for a data range.
type Locator interface {
	// Locate returns tick positions within [min, max] in increasing
	// order. The returned positions never lie outside the range.
	Locate(min, max float64) []float64
}

// Auto is the automatically selected tick locator. It behaves like
// MaxN with default settings, matching what the engine picks when an
// axis asks for "auto" ticks.
type Auto struct{}

// Locate implements Locator.
func (Auto) Locate(min, max float64) []float64 {
	return MaxN{}.Locate(min, max)
}

// MaxN caps the number of major ticks and chooses the widest spacing of
// the form step*10^k, step drawn from Steps, that still produces at
// least two ticks.
type MaxN struct {
	// Bins is the maximum number of major ticks. Zero means 9.
	Bins int

	// Steps are the allowed step multipliers per decade.
	// Nil means [1, 2, 2.5, 5].
	Steps []float64
}

// DefaultSteps are the step multipliers used when MaxN.Steps is nil.
var DefaultSteps = []float64{1, 2, 2.5, 5}

func (l MaxN) bins() int {
	if l.Bins <= 0 {
		return 9
	}
	return l.Bins
}

func (l MaxN) steps() []float64 {
	if len(l.Steps) == 0 {
		return DefaultSteps
	}
	return l.Steps
}

// spacing returns the tick spacing at the given search level. Levels
// cycle through the step multipliers and shift by decades, so spacing
// grows monotonically with level as FindLevel requires.
func (l MaxN) spacing(level int) float64 {
	steps := l.steps()
	n := len(steps)
	decade := level / n
	idx := level % n
	if idx < 0 {
		idx += n
		decade--
	}
	return steps[idx] * math.Pow(10, float64(decade))
}

// Locate implements Locator.
func (l MaxN) Locate(min, max float64) []float64 {
	if !validRange(min, max) {
		return nil
	}
	opt := scale.TickOptions{Max: l.bins()}
	guess := len(l.steps()) * int(math.Floor(math.Log10(max-min)))
	level, ok := opt.FindLevel(funcTicker{
		count: func(level int) int { return countMultiples(min, max, l.spacing(level)) },
		at:    func(level int) []float64 { return multiples(min, max, l.spacing(level)) },
	}, guess)
	if !ok {
		return nil
	}
	return multiples(min, max, l.spacing(level))
}

// PiMultiple places ticks at multiples of π. The spacing is π·2^k for
// k ≥ 0, so every tick is an exact multiple of π.
type PiMultiple struct {
	// Bins is the maximum number of major ticks. Zero means 9.
	Bins int
}

func (l PiMultiple) bins() int {
	if l.Bins <= 0 {
		return 9
	}
	return l.Bins
}

// Locate implements Locator.
func (l PiMultiple) Locate(min, max float64) []float64 {
	if !validRange(min, max) {
		return nil
	}
	opt := scale.TickOptions{Max: l.bins(), MinLevel: 0, MaxLevel: 1000}
	spacing := func(level int) float64 {
		return math.Pi * math.Pow(2, float64(level))
	}
	level, ok := opt.FindLevel(funcTicker{
		count: func(level int) int { return countMultiples(min, max, spacing(level)) },
		at:    func(level int) []float64 { return multiples(min, max, spacing(level)) },
	}, 0)
	if !ok {
		return nil
	}
	return multiples(min, max, spacing(level))
}

// Log places ticks at integer powers of Base. When single powers would
// produce too many ticks it widens to every 2nd, 3rd, ... power.
type Log struct {
	// Base is the logarithm base. Zero means 10.
	Base float64

	// Bins is the maximum number of major ticks. Zero means 9.
	Bins int
}

func (l Log) base() float64 {
	if l.Base <= 1 {
		return 10
	}
	return l.Base
}

func (l Log) bins() int {
	if l.Bins <= 0 {
		return 9
	}
	return l.Bins
}

// Locate implements Locator.
func (l Log) Locate(min, max float64) []float64 {
	if !validRange(min, max) || min <= 0 {
		return nil
	}
	base := l.base()
	emin := math.Log(min) / math.Log(base)
	emax := math.Log(max) / math.Log(base)

	opt := scale.TickOptions{Max: l.bins(), MinLevel: 0, MaxLevel: 1000}
	stride := func(level int) float64 { return float64(level + 1) }
	exps := func(level int) []float64 { return multiples(emin, emax, stride(level)) }
	level, ok := opt.FindLevel(funcTicker{
		count: func(level int) int { return countMultiples(emin, emax, stride(level)) },
		at:    exps,
	}, 0)
	if !ok {
		return nil
	}
	out := exps(level)
	for i, e := range out {
		out[i] = math.Pow(base, e)
	}
	// Guard against pow round-off pushing an endpoint tick outside the
	// data range.
	return clipToRange(out, min, max)
}

// MinorFor derives minor tick positions from major ones: the standard
// subdivisions for linear spacing, and intermediate powers (or the
// 2..base-1 multiples within a decade) for Log.
func MinorFor(l Locator, min, max float64, majors []float64) []float64 {
	if log, ok := l.(Log); ok {
		return logMinors(log.base(), min, max, majors)
	}
	if len(majors) < 2 {
		return nil
	}
	spacing := majors[1] - majors[0]
	return multiplesExcluding(min, max, spacing/5, majors)
}

func logMinors(base float64, min, max float64, majors []float64) []float64 {
	if len(majors) == 0 || base != math.Trunc(base) || base < 2 {
		return nil
	}
	var out []float64
	start := majors[0] / base
	for m := start; m < max; m *= base {
		for k := 2.0; k < base; k++ {
			v := m * k
			if v > min && v < max && !containsApprox(majors, v) {
				out = append(out, v)
			}
		}
	}
	return out
}

// validRange reports whether [min, max] is a usable, finite range.
func validRange(min, max float64) bool {
	return min < max && !math.IsInf(min, 0) && !math.IsInf(max, 0) &&
		!math.IsNaN(min) && !math.IsNaN(max)
}

// countMultiples returns how many multiples of spacing lie in [min, max]
// without materializing them.
func countMultiples(min, max, spacing float64) int {
	lo := math.Ceil(min / spacing)
	hi := math.Floor(max / spacing)
	n := int(hi-lo) + 1
	if n < 0 {
		return 0
	}
	return n
}

// multiples returns the multiples of spacing within [min, max] in
// increasing order. Positions are computed by multiplication, not
// repeated addition, so they are exact multiples regardless of count.
func multiples(min, max, spacing float64) []float64 {
	lo := math.Ceil(min / spacing)
	hi := math.Floor(max / spacing)
	if hi < lo {
		return nil
	}
	out := make([]float64, 0, int(hi-lo)+1)
	for i := lo; i <= hi; i++ {
		v := i * spacing
		if v == 0 {
			v = 0 // normalize -0
		}
		out = append(out, v)
	}
	return out
}

func multiplesExcluding(min, max, spacing float64, excluded []float64) []float64 {
	all := multiples(min, max, spacing)
	out := all[:0]
	for _, v := range all {
		if !containsApprox(excluded, v) {
			out = append(out, v)
		}
	}
	return out
}

func containsApprox(vals []float64, v float64) bool {
	const eps = 1e-9
	for _, w := range vals {
		tol := eps * math.Max(1, math.Abs(w))
		if math.Abs(w-v) <= tol {
			return true
		}
	}
	return false
}

func clipToRange(vals []float64, min, max float64) []float64 {
	out := vals[:0]
	const slack = 1e-9
	for _, v := range vals {
		if v >= min*(1-slack)-slack && v <= max*(1+slack)+slack {
			if v < min {
				v = min
			}
			if v > max {
				v = max
			}
			out = append(out, v)
		}
	}
	return out
}
