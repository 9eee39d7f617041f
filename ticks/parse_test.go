package ticks

import (
	"reflect"
	"testing"
)

func TestParseLocator(t *testing.T) {
	tests := []struct {
		in   string
		want Locator
	}{
		{"auto", Auto{}},
		{"Auto", Auto{}},
		{"maxn", MaxN{Bins: 9}},
		{"maxn12", MaxN{Bins: 12}},
		{"pimultiple", PiMultiple{Bins: 9}},
		{"pimultiple5", PiMultiple{Bins: 5}},
		{"pi", PiMultiple{Bins: 9}},
		{"pi4", PiMultiple{Bins: 4}},
		{"log", Log{Base: 10}},
		{"log2", Log{Base: 2}},
		{"datetime", DateTime{Period: 1, Unit: UnitAuto}},
		{"datetime6,hours", DateTime{Period: 6, Unit: UnitHours}},
		{"timedelta", TimeDelta{Period: 1, Unit: UnitAuto}},
		{"timedelta15,minutes", TimeDelta{Period: 15, Unit: UnitMinutes}},
	}
	for _, tt := range tests {
		got, err := ParseLocator(tt.in)
		if err != nil {
			t.Errorf("ParseLocator(%q) error: %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseLocator(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestParseLocatorErrors(t *testing.T) {
	for _, in := range []string{"", "bogus", "maxnx", "datetime1,fortnights"} {
		if _, err := ParseLocator(in); err == nil {
			t.Errorf("ParseLocator(%q) succeeded, want error", in)
		}
	}
}

func TestAutoFormatterFor(t *testing.T) {
	if _, ok := AutoFormatterFor(PiMultiple{}).(PiFormat); !ok {
		t.Error("PiMultiple did not resolve to PiFormat")
	}
	if _, ok := AutoFormatterFor(DateTime{}).(DateTimeFormat); !ok {
		t.Error("DateTime did not resolve to DateTimeFormat")
	}
	if _, ok := AutoFormatterFor(MaxN{}).(AutoFormat); !ok {
		t.Error("MaxN did not resolve to AutoFormat")
	}
}
