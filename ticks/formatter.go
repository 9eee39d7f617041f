package ticks

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Formatter turns tick positions into labels. Labels receives the full
// tick slice so formatters can pick a precision that distinguishes
// neighboring ticks.
type Formatter interface {
	Labels(ticks []float64) []string
}

// AutoFormat chooses a decimal precision from the tick spacing and
// switches to scientific notation for very large or small magnitudes.
type AutoFormat struct{}

// Labels implements Formatter.
func (AutoFormat) Labels(ticks []float64) []string {
	if len(ticks) == 0 {
		return nil
	}
	prec := autoPrecision(ticks)
	maxAbs := 0.0
	for _, v := range ticks {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	scientific := maxAbs >= 1e6 || (maxAbs > 0 && maxAbs < 1e-4)
	out := make([]string, len(ticks))
	for i, v := range ticks {
		if scientific && v != 0 {
			out[i] = strconv.FormatFloat(v, 'e', 1, 64)
		} else {
			out[i] = strconv.FormatFloat(v, 'f', prec, 64)
		}
	}
	return out
}

// autoPrecision returns the number of decimals needed to distinguish
// consecutive ticks.
func autoPrecision(ticks []float64) int {
	if len(ticks) < 2 {
		return 0
	}
	spacing := math.Abs(ticks[1] - ticks[0])
	if spacing == 0 {
		return 0
	}
	p := -int(math.Floor(math.Log10(spacing)))
	if p < 0 {
		return 0
	}
	if p > 12 {
		return 12
	}
	// One extra digit when the spacing is not a power of ten
	// (e.g. 0.25 steps need two decimals, not one).
	scaled := spacing * math.Pow(10, float64(p))
	if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
		p++
	}
	return p
}

// SharedAutoFormat is AutoFormat for axes with a shared scale: the axis
// it is attached to mirrors the reference axis's ticks, so labels are
// computed the same way on both.
type SharedAutoFormat struct{}

// Labels implements Formatter.
func (SharedAutoFormat) Labels(ticks []float64) []string {
	return AutoFormat{}.Labels(ticks)
}

// DecimalFormat formats ticks with a fixed number of decimals.
type DecimalFormat struct {
	// Precision is the number of decimal digits. Negative means 2.
	Precision int
}

// Labels implements Formatter.
func (f DecimalFormat) Labels(ticks []float64) []string {
	prec := f.Precision
	if prec < 0 {
		prec = 2
	}
	out := make([]string, len(ticks))
	for i, v := range ticks {
		out[i] = strconv.FormatFloat(v, 'f', prec, 64)
	}
	return out
}

// PercentFormat formats tick values as percentages: 0.5 becomes "50%".
type PercentFormat struct {
	// Decimals is the number of decimal digits. Negative chooses
	// automatically from the tick spacing.
	Decimals int
}

// Labels implements Formatter.
func (f PercentFormat) Labels(ticks []float64) []string {
	scaled := make([]float64, len(ticks))
	for i, v := range ticks {
		scaled[i] = v * 100
	}
	prec := f.Decimals
	if prec < 0 {
		prec = autoPrecision(scaled)
	}
	out := make([]string, len(scaled))
	for i, v := range scaled {
		out[i] = strconv.FormatFloat(v, 'f', prec, 64) + "%"
	}
	return out
}

// DateTimeFormat formats Unix-second tick values as calendar dates in
// UTC.
type DateTimeFormat struct {
	// Layout is a Go time layout. Empty picks a layout from the
	// tick spacing.
	Layout string
}

// Labels implements Formatter.
func (f DateTimeFormat) Labels(ticks []float64) []string {
	layout := f.Layout
	if layout == "" {
		layout = autoDateLayout(ticks)
	}
	out := make([]string, len(ticks))
	for i, v := range ticks {
		sec, frac := math.Modf(v)
		t := time.Unix(int64(sec), int64(frac*1e9)).UTC()
		out[i] = t.Format(layout)
	}
	return out
}

func autoDateLayout(ticks []float64) string {
	if len(ticks) < 2 {
		return "2006-01-02"
	}
	spacing := ticks[1] - ticks[0]
	switch {
	case spacing < 1:
		return "15:04:05.000000"
	case spacing < 60:
		return "15:04:05"
	case spacing < 86400:
		return "15:04"
	case spacing < 28*86400:
		return "Jan 02"
	case spacing < 360*86400:
		return "2006-01"
	default:
		return "2006"
	}
}

// TimeDeltaFormat formats duration tick values given in seconds.
type TimeDeltaFormat struct {
	// Layout, when non-empty, is a fmt verb applied to the value in
	// seconds (e.g. "%.1fs"). Empty uses time.Duration formatting.
	Layout string
}

// Labels implements Formatter.
func (f TimeDeltaFormat) Labels(ticks []float64) []string {
	out := make([]string, len(ticks))
	for i, v := range ticks {
		if f.Layout != "" {
			out[i] = fmt.Sprintf(f.Layout, v)
			continue
		}
		d := time.Duration(v * float64(time.Second))
		out[i] = d.String()
	}
	return out
}

// PiFormat labels ticks as multiples of π: "0", "π", "2π", "-π", and
// "π/2" style fractions for half and quarter multiples. It is the
// automatic formatter for the PiMultiple locator.
type PiFormat struct{}

// Labels implements Formatter.
func (PiFormat) Labels(ticks []float64) []string {
	out := make([]string, len(ticks))
	for i, v := range ticks {
		out[i] = piLabel(v)
	}
	return out
}

func piLabel(v float64) string {
	r := v / math.Pi
	for _, denom := range []float64{1, 2, 4} {
		n := r * denom
		if math.Abs(n-math.Round(n)) < 1e-9 {
			return piFraction(int(math.Round(n)), int(denom))
		}
	}
	return strconv.FormatFloat(r, 'g', 3, 64) + "π"
}

func piFraction(num, denom int) string {
	if num == 0 {
		return "0"
	}
	sign := ""
	if num < 0 {
		sign = "-"
		num = -num
	}
	// Reduce even fractions: 2/2 -> 1/1, 2/4 -> 1/2.
	for num%2 == 0 && denom%2 == 0 {
		num, denom = num/2, denom/2
	}
	numStr := strconv.Itoa(num) + "π"
	if num == 1 {
		numStr = "π"
	}
	if denom == 1 {
		return sign + numStr
	}
	return sign + numStr + "/" + strconv.Itoa(denom)
}
