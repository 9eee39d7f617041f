package ticks

import (
	"math"
	"reflect"
	"testing"
)

func TestAutoFormatIntegers(t *testing.T) {
	got := AutoFormat{}.Labels([]float64{0, 5, 10})
	want := []string{"0", "5", "10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Labels = %v, want %v", got, want)
	}
}

func TestAutoFormatDecimals(t *testing.T) {
	got := AutoFormat{}.Labels([]float64{0, 0.25, 0.5})
	want := []string{"0.00", "0.25", "0.50"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Labels = %v, want %v", got, want)
	}
}

func TestAutoFormatScientific(t *testing.T) {
	got := AutoFormat{}.Labels([]float64{0, 2e6, 4e6})
	if got[1] != "2.0e+06" {
		t.Errorf("Labels[1] = %q, want 2.0e+06", got[1])
	}
	if got[0] != "0" && got[0] != "0.000000" {
		// Zero stays in plain notation.
		t.Errorf("Labels[0] = %q", got[0])
	}
}

func TestDecimalFormat(t *testing.T) {
	got := DecimalFormat{Precision: 1}.Labels([]float64{1.25, 2})
	want := []string{"1.2", "2.0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Labels = %v, want %v", got, want)
	}
}

func TestPercentFormat(t *testing.T) {
	got := PercentFormat{}.Labels([]float64{0, 0.5, 1})
	want := []string{"0%", "50%", "100%"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Labels = %v, want %v", got, want)
	}
}

func TestPiFormat(t *testing.T) {
	got := PiFormat{}.Labels([]float64{
		-math.Pi, 0, math.Pi / 2, math.Pi, 2 * math.Pi, 3 * math.Pi / 2,
	})
	want := []string{"-π", "0", "π/2", "π", "2π", "3π/2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Labels = %v, want %v", got, want)
	}
}

func TestDateTimeFormatLayouts(t *testing.T) {
	// Daily spacing formats as month/day.
	ticks := []float64{1682899200, 1682985600}
	got := DateTimeFormat{}.Labels(ticks)
	want := []string{"May 01", "May 02"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Labels = %v, want %v", got, want)
	}

	got = DateTimeFormat{Layout: "2006-01-02"}.Labels(ticks[:1])
	if got[0] != "2023-05-01" {
		t.Errorf("explicit layout = %q, want 2023-05-01", got[0])
	}
}

func TestTimeDeltaFormat(t *testing.T) {
	got := TimeDeltaFormat{}.Labels([]float64{90})
	if got[0] != "1m30s" {
		t.Errorf("Labels = %v, want [1m30s]", got)
	}
	got = TimeDeltaFormat{Layout: "%.0fs"}.Labels([]float64{90})
	if got[0] != "90s" {
		t.Errorf("Labels = %v, want [90s]", got)
	}
}

func TestFormattersIdempotent(t *testing.T) {
	ticks := []float64{0, 0.5, 1, 1.5}
	fs := []Formatter{AutoFormat{}, SharedAutoFormat{}, DecimalFormat{},
		PercentFormat{Decimals: -1}, PiFormat{}}
	for _, f := range fs {
		a := f.Labels(ticks)
		b := f.Labels(ticks)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%T not deterministic", f)
		}
	}
}
