package ticks

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLocator converts a string shortcut into a Locator. Accepted
// forms, case-insensitive:
//
//	"auto"
//	"maxn", "maxn12"           (optional bin count)
//	"pimultiple", "pi", "pi4"  (optional bin count)
//	"log", "log2"              (optional base)
//	"datetime", "datetime6,hours"
//	"timedelta", "timedelta15,minutes"
func ParseLocator(s string) (Locator, error) {
	orig := s
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "auto":
		return Auto{}, nil
	case strings.HasPrefix(s, "maxn"):
		bins, err := optionalInt(s[len("maxn"):], 9)
		if err != nil {
			return nil, fmt.Errorf("ticks: invalid locator %q: %w", orig, err)
		}
		return MaxN{Bins: bins}, nil
	case strings.HasPrefix(s, "pimultiple"):
		bins, err := optionalInt(s[len("pimultiple"):], 9)
		if err != nil {
			return nil, fmt.Errorf("ticks: invalid locator %q: %w", orig, err)
		}
		return PiMultiple{Bins: bins}, nil
	case strings.HasPrefix(s, "pi"):
		bins, err := optionalInt(s[len("pi"):], 9)
		if err != nil {
			return nil, fmt.Errorf("ticks: invalid locator %q: %w", orig, err)
		}
		return PiMultiple{Bins: bins}, nil
	case strings.HasPrefix(s, "log"):
		base := 10.0
		if rest := s[len("log"):]; rest != "" {
			var err error
			base, err = strconv.ParseFloat(rest, 64)
			if err != nil {
				return nil, fmt.Errorf("ticks: invalid locator %q: %w", orig, err)
			}
		}
		return Log{Base: base}, nil
	case strings.HasPrefix(s, "datetime"):
		period, unit, err := parsePeriodUnit(s[len("datetime"):])
		if err != nil {
			return nil, fmt.Errorf("ticks: invalid locator %q: %w", orig, err)
		}
		return DateTime{Period: period, Unit: unit}, nil
	case strings.HasPrefix(s, "timedelta"):
		period, unit, err := parsePeriodUnit(s[len("timedelta"):])
		if err != nil {
			return nil, fmt.Errorf("ticks: invalid locator %q: %w", orig, err)
		}
		return TimeDelta{Period: period, Unit: unit}, nil
	default:
		return nil, fmt.Errorf("ticks: unknown locator %q", orig)
	}
}

func optionalInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func parsePeriodUnit(s string) (int, TimeUnit, error) {
	if s == "" {
		return 1, UnitAuto, nil
	}
	parts := strings.SplitN(s, ",", 2)
	period := 1
	if parts[0] != "" {
		p, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, "", err
		}
		period = p
	}
	unit := UnitAuto
	if len(parts) == 2 {
		unit = TimeUnit(strings.TrimSpace(parts[1]))
		switch unit {
		case UnitAuto, UnitMicros, UnitSeconds, UnitMinutes, UnitHours,
			UnitDays, UnitWeeks, UnitMonths, UnitYears:
		default:
			return 0, "", fmt.Errorf("unknown time unit %q", unit)
		}
	}
	return period, unit, nil
}

// AutoFormatterFor resolves the automatic formatter for a locator:
// PiMultiple ticks get π labels, time locators get matching time labels
// and everything else uses AutoFormat.
func AutoFormatterFor(l Locator) Formatter {
	switch l.(type) {
	case PiMultiple:
		return PiFormat{}
	case DateTime:
		return DateTimeFormat{}
	case TimeDelta:
		return TimeDeltaFormat{}
	default:
		return AutoFormat{}
	}
}
