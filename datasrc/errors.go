package datasrc

import (
	"fmt"
	"strings"
)

// SchemaError is returned when a series references a column that does
// not exist in the bound data source.
type SchemaError struct {
	// Column is the missing column name.
	Column string

	// Known lists the column names present in the source, sorted.
	Known []string
}

func (e *SchemaError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("datasrc: column %q not found (source is empty)", e.Column)
	}
	return fmt.Sprintf("datasrc: column %q not found (have %s)",
		e.Column, strings.Join(e.Known, ", "))
}

// LengthMismatchError is returned when columns referenced together by
// one series have differing lengths.
type LengthMismatchError struct {
	Column      string
	Length      int
	Other       string
	OtherLength int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("datasrc: column %q has %d values but %q has %d",
		e.Column, e.Length, e.Other, e.OtherLength)
}
