package datasrc

import (
	"errors"
	"reflect"
	"testing"
)

func TestColumnsLookup(t *testing.T) {
	src := FromColumns(map[string][]float64{
		"x": {1, 2, 3},
		"y": {4, 5, 6},
	})

	col, err := src.Column("x")
	if err != nil {
		t.Fatalf("Column(x) error: %v", err)
	}
	if !reflect.DeepEqual(col, []float64{1, 2, 3}) {
		t.Errorf("Column(x) = %v", col)
	}

	_, err = src.Column("z")
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("Column(z) error = %v, want *SchemaError", err)
	}
	if se.Column != "z" {
		t.Errorf("SchemaError.Column = %q, want z", se.Column)
	}
	if !reflect.DeepEqual(se.Known, []string{"x", "y"}) {
		t.Errorf("SchemaError.Known = %v, want [x y]", se.Known)
	}
}

func TestNamesSorted(t *testing.T) {
	src := FromColumns(map[string][]float64{"b": nil, "a": nil, "c": nil})
	want := []string{"a", "b", "c"}
	for i := 0; i < 10; i++ {
		if got := src.Names(); !reflect.DeepEqual(got, want) {
			t.Fatalf("Names = %v, want %v", got, want)
		}
	}
}

func TestFromSlices(t *testing.T) {
	src, err := FromSlices(map[string]any{
		"i": []int{1, 2},
		"u": []uint8{3, 4},
		"f": []float32{0.5, 1.5},
	})
	if err != nil {
		t.Fatalf("FromSlices error: %v", err)
	}
	got, _ := src.Column("u")
	if !reflect.DeepEqual(got, []float64{3, 4}) {
		t.Errorf("Column(u) = %v, want [3 4]", got)
	}
}

func TestFromSlicesUnsupported(t *testing.T) {
	_, err := FromSlices(map[string]any{"s": []string{"a"}})
	if err == nil {
		t.Fatal("FromSlices accepted []string")
	}
}

func TestResolveLengthMismatch(t *testing.T) {
	src := FromColumns(map[string][]float64{
		"x": {1, 2, 3},
		"y": {4, 5},
	})
	_, err := Resolve(src, "x", "y")
	var lme *LengthMismatchError
	if !errors.As(err, &lme) {
		t.Fatalf("Resolve error = %v, want *LengthMismatchError", err)
	}
	if lme.Column != "y" || lme.Length != 2 || lme.OtherLength != 3 {
		t.Errorf("LengthMismatchError = %+v", lme)
	}
}

func TestResolveOrder(t *testing.T) {
	src := FromColumns(map[string][]float64{
		"x": {1},
		"y": {2},
	})
	cols, err := Resolve(src, "y", "x")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if cols[0][0] != 2 || cols[1][0] != 1 {
		t.Errorf("Resolve order wrong: %v", cols)
	}
}

func TestFromRows(t *testing.T) {
	src, err := FromRows([]string{"x", "y"}, [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	x, err := src.Column("x")
	if err != nil {
		t.Fatalf("Column(x): %v", err)
	}
	y, err := src.Column("y")
	if err != nil {
		t.Fatalf("Column(y): %v", err)
	}
	if x[0] != 1 || x[2] != 3 || y[0] != 10 || y[2] != 30 {
		t.Errorf("transposed columns wrong: x=%v y=%v", x, y)
	}
}

func TestFromRowsRaggedRow(t *testing.T) {
	_, err := FromRows([]string{"x", "y"}, [][]float64{
		{1, 10},
		{2},
	})
	var lme *LengthMismatchError
	if !errors.As(err, &lme) {
		t.Fatalf("FromRows error = %v, want *LengthMismatchError", err)
	}
	if lme.Length != 1 || lme.OtherLength != 2 {
		t.Errorf("LengthMismatchError = %+v", lme)
	}
}
