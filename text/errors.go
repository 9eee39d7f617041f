package text

import (
	"errors"
	"fmt"
)

// ErrNoFaces is returned when a shaper is constructed without any
// usable font faces.
var ErrNoFaces = errors.New("text: no font faces available")

// FontError is returned when no loaded face (including fallbacks)
// provides a glyph for a rune.
type FontError struct {
	// Rune is the character that could not be resolved.
	Rune rune

	// Family is the requested font family.
	Family string
}

func (e *FontError) Error() string {
	return fmt.Sprintf("text: no glyph for %q in family %q or any fallback", e.Rune, e.Family)
}
