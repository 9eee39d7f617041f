package ticks

import (
	"math"
	"time"
)

// TimeUnit names a calendar or duration unit for time-based locators.
type TimeUnit string

// Time units accepted by DateTime and TimeDelta locators.
// UnitAuto lets the locator pick a unit from the range magnitude.
const (
	UnitAuto    TimeUnit = "auto"
	UnitMicros  TimeUnit = "micros"
	UnitSeconds TimeUnit = "seconds"
	UnitMinutes TimeUnit = "minutes"
	UnitHours   TimeUnit = "hours"
	UnitDays    TimeUnit = "days"
	UnitWeeks   TimeUnit = "weeks"
	UnitMonths  TimeUnit = "months"
	UnitYears   TimeUnit = "years"
)

// seconds per fixed-width unit. Months and years are calendar units and
// are handled by date walking instead.
var unitSeconds = map[TimeUnit]float64{
	UnitMicros:  1e-6,
	UnitSeconds: 1,
	UnitMinutes: 60,
	UnitHours:   3600,
	UnitDays:    86400,
	UnitWeeks:   7 * 86400,
}

// DateTime places ticks on calendar boundaries. Data values are Unix
// timestamps in seconds (UTC).
type DateTime struct {
	// Period is the number of units between ticks. Ignored when
	// Unit is UnitAuto. Zero means 1.
	Period int

	// Unit selects the calendar unit. Empty means UnitAuto.
	Unit TimeUnit
}

func (l DateTime) period() int {
	if l.Period <= 0 {
		return 1
	}
	return l.Period
}

// Locate implements Locator.
func (l DateTime) Locate(min, max float64) []float64 {
	if !validRange(min, max) {
		return nil
	}
	unit := l.Unit
	period := l.period()
	if unit == "" || unit == UnitAuto {
		unit, period = autoDateUnit(max - min)
	}
	switch unit {
	case UnitMonths:
		return monthTicks(min, max, period)
	case UnitYears:
		return yearTicks(min, max, period)
	default:
		sec, ok := unitSeconds[unit]
		if !ok {
			return nil
		}
		return multiples(min, max, float64(period)*sec)
	}
}

// autoDateUnit picks a unit and period that yield a readable number of
// ticks for the given span in seconds.
func autoDateUnit(span float64) (TimeUnit, int) {
	type step struct {
		unit   TimeUnit
		period int
	}
	ladder := []step{
		{UnitMicros, 1}, {UnitMicros, 10}, {UnitMicros, 100},
		{UnitMicros, 1000}, {UnitMicros, 10000}, {UnitMicros, 100000},
		{UnitSeconds, 1}, {UnitSeconds, 5}, {UnitSeconds, 15}, {UnitSeconds, 30},
		{UnitMinutes, 1}, {UnitMinutes, 5}, {UnitMinutes, 15}, {UnitMinutes, 30},
		{UnitHours, 1}, {UnitHours, 3}, {UnitHours, 6}, {UnitHours, 12},
		{UnitDays, 1}, {UnitDays, 2}, {UnitWeeks, 1},
		{UnitMonths, 1}, {UnitMonths, 3}, {UnitMonths, 6},
		{UnitYears, 1}, {UnitYears, 2}, {UnitYears, 5}, {UnitYears, 10},
	}
	const maxTicks = 9
	for _, s := range ladder {
		var width float64
		switch s.unit {
		case UnitMonths:
			width = float64(s.period) * 30 * 86400
		case UnitYears:
			width = float64(s.period) * 365 * 86400
		default:
			width = float64(s.period) * unitSeconds[s.unit]
		}
		if span/width <= maxTicks {
			return s.unit, s.period
		}
	}
	// Fall back to decades of years for very long spans.
	years := span / (365 * 86400)
	p := int(math.Pow(10, math.Ceil(math.Log10(years/maxTicks))))
	if p < 10 {
		p = 10
	}
	return UnitYears, p
}

func monthTicks(min, max float64, period int) []float64 {
	start := time.Unix(int64(min), 0).UTC()
	t := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	// Align to a period boundary counted from January.
	for (int(t.Month())-1)%period != 0 {
		t = t.AddDate(0, 1, 0)
	}
	for float64(t.Unix()) < min {
		t = t.AddDate(0, period, 0)
	}
	var out []float64
	for float64(t.Unix()) <= max {
		out = append(out, float64(t.Unix()))
		t = t.AddDate(0, period, 0)
	}
	return out
}

func yearTicks(min, max float64, period int) []float64 {
	start := time.Unix(int64(min), 0).UTC()
	year := start.Year()
	year -= year % period
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for float64(t.Unix()) < min {
		t = t.AddDate(period, 0, 0)
	}
	var out []float64
	for float64(t.Unix()) <= max {
		out = append(out, float64(t.Unix()))
		t = t.AddDate(period, 0, 0)
	}
	return out
}

// TimeDelta places ticks at round durations. Data values are durations
// in seconds.
type TimeDelta struct {
	// Period is the number of units between ticks. Ignored when
	// Unit is UnitAuto. Zero means 1.
	Period int

	// Unit selects the duration unit (micros through days).
	// Empty means UnitAuto.
	Unit TimeUnit
}

func (l TimeDelta) period() int {
	if l.Period <= 0 {
		return 1
	}
	return l.Period
}

// Locate implements Locator.
func (l TimeDelta) Locate(min, max float64) []float64 {
	if !validRange(min, max) {
		return nil
	}
	unit := l.Unit
	period := l.period()
	if unit == "" || unit == UnitAuto {
		unit, period = autoDeltaUnit(max - min)
	}
	sec, ok := unitSeconds[unit]
	if !ok {
		return nil
	}
	return multiples(min, max, float64(period)*sec)
}

func autoDeltaUnit(span float64) (TimeUnit, int) {
	type step struct {
		unit   TimeUnit
		period int
	}
	ladder := []step{
		{UnitMicros, 1}, {UnitMicros, 10}, {UnitMicros, 100},
		{UnitMicros, 1000}, {UnitMicros, 10000}, {UnitMicros, 100000},
		{UnitSeconds, 1}, {UnitSeconds, 5}, {UnitSeconds, 15}, {UnitSeconds, 30},
		{UnitMinutes, 1}, {UnitMinutes, 5}, {UnitMinutes, 15}, {UnitMinutes, 30},
		{UnitHours, 1}, {UnitHours, 3}, {UnitHours, 6}, {UnitHours, 12},
		{UnitDays, 1}, {UnitDays, 2}, {UnitDays, 7},
	}
	const maxTicks = 9
	for _, s := range ladder {
		width := float64(s.period) * unitSeconds[s.unit]
		if span/width <= maxTicks {
			return s.unit, s.period
		}
	}
	days := span / 86400
	p := int(math.Pow(10, math.Ceil(math.Log10(days/maxTicks))))
	if p < 10 {
		p = 10
	}
	return UnitDays, p
}
