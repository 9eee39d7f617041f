// Package datasrc normalizes heterogeneous column-oriented inputs into a
// uniform columnar view keyed by name.
//
// A figure only declares column names; the actual data arrives at render
// time as a Source. The adapter functions in this package convert common
// Go shapes (maps of float slices, maps of arbitrary numeric slices,
// row-oriented tables) into a Source. Column resolution errors are
// reported as *SchemaError and *LengthMismatchError so callers can
// distinguish them from I/O failures.
package datasrc

import (
	"fmt"
	"sort"
)

// Source provides read access to named numeric columns.
// Implementations must be safe for concurrent readers and must not
// mutate previously returned columns.
type Source interface {
	// Column returns the values of the named column.
	// It returns a *SchemaError if the column does not exist.
	Column(name string) ([]float64, error)

	// Names returns all column names in deterministic (sorted) order.
	Names() []string
}

// Columns is a Source backed by a map of float64 slices.
// The zero value is an empty source.
type Columns map[string][]float64

// FromColumns creates a Source from a map of named float64 columns.
// The map is used directly, not copied: callers must not mutate it
// while a render is in progress.
func FromColumns(cols map[string][]float64) Columns {
	return Columns(cols)
}

// Column implements Source.
func (c Columns) Column(name string) ([]float64, error) {
	col, ok := c[name]
	if !ok {
		return nil, &SchemaError{Column: name, Known: c.Names()}
	}
	return col, nil
}

// Names implements Source.
func (c Columns) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromSlices creates a Source from a map of numeric slices of any
// supported element type. Supported element types: all signed and
// unsigned integers and both float sizes. Values are converted to
// float64 once, at adaptation time.
func FromSlices(cols map[string]any) (Columns, error) {
	out := make(Columns, len(cols))
	// Sorted order so a conversion error is deterministic when several
	// columns are invalid.
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		col, err := toFloats(cols[name])
		if err != nil {
			return nil, fmt.Errorf("datasrc: column %q: %w", name, err)
		}
		out[name] = col
	}
	return out, nil
}

func toFloats(v any) ([]float64, error) {
	switch s := v.(type) {
	case []float64:
		return s, nil
	case []float32:
		return convert(s), nil
	case []int:
		return convert(s), nil
	case []int8:
		return convert(s), nil
	case []int16:
		return convert(s), nil
	case []int32:
		return convert(s), nil
	case []int64:
		return convert(s), nil
	case []uint:
		return convert(s), nil
	case []uint8:
		return convert(s), nil
	case []uint16:
		return convert(s), nil
	case []uint32:
		return convert(s), nil
	case []uint64:
		return convert(s), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", v)
	}
}

func convert[T int | int8 | int16 | int32 | int64 |
	uint | uint8 | uint16 | uint32 | uint64 | float32](s []T) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

// FromRows creates a Source from a row-oriented table: headers names
// the columns and each row supplies one value per column. Rows are
// transposed into columns once, at adaptation time. A row whose length
// differs from the header count is reported as a *LengthMismatchError.
func FromRows(headers []string, rows [][]float64) (Columns, error) {
	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, &LengthMismatchError{
				Column: fmt.Sprintf("row %d", i), Length: len(row),
				Other: "headers", OtherLength: len(headers),
			}
		}
	}
	out := make(Columns, len(headers))
	for j, name := range headers {
		col := make([]float64, len(rows))
		for i, row := range rows {
			col[i] = row[j]
		}
		out[name] = col
	}
	return out, nil
}

// Resolve fetches a group of columns that are used together (for example
// the x and y columns of one series) and verifies they have equal length.
// It returns the columns in the same order as the names.
func Resolve(src Source, names ...string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for i, name := range names {
		col, err := src.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	for i := 1; i < len(cols); i++ {
		if len(cols[i]) != len(cols[0]) {
			return nil, &LengthMismatchError{
				Column: names[i], Length: len(cols[i]),
				Other: names[0], OtherLength: len(cols[0]),
			}
		}
	}
	return cols, nil
}
