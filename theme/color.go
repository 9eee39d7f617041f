package theme

import (
	"fmt"
	"image/color"
	"strings"
)

// RGBA is a fully resolved color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// Hex returns the color in "#rrggbb" or "#rrggbbaa" notation.
func (c RGBA) Hex() string {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// RGB creates an opaque color from components in [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or
// without a leading '#'.
func Hex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint32
	a = 255

	ok := true
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) &&
			parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) &&
			parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return RGBA{}, fmt.Errorf("theme: invalid hex color %q", hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// cssNames maps the CSS color names accepted in color specifications.
var cssNames = map[string]RGBA{
	"black":     RGB(0, 0, 0),
	"white":     RGB(1, 1, 1),
	"red":       RGB(1, 0, 0),
	"green":     RGB(0, 0.5, 0),
	"lime":      RGB(0, 1, 0),
	"blue":      RGB(0, 0, 1),
	"yellow":    RGB(1, 1, 0),
	"cyan":      RGB(0, 1, 1),
	"aqua":      RGB(0, 1, 1),
	"magenta":   RGB(1, 0, 1),
	"fuchsia":   RGB(1, 0, 1),
	"gray":      RGB(0.5, 0.5, 0.5),
	"grey":      RGB(0.5, 0.5, 0.5),
	"silver":    RGB(0.75, 0.75, 0.75),
	"maroon":    RGB(0.5, 0, 0),
	"olive":     RGB(0.5, 0.5, 0),
	"navy":      RGB(0, 0, 0.5),
	"teal":      RGB(0, 0.5, 0.5),
	"purple":    RGB(0.5, 0, 0.5),
	"orange":    RGB(1, 0.647, 0),
	"pink":      RGB(1, 0.753, 0.796),
	"brown":     RGB(0.647, 0.165, 0.165),
	"gold":      RGB(1, 0.843, 0),
	"coral":     RGB(1, 0.498, 0.314),
	"salmon":    RGB(0.98, 0.502, 0.447),
	"indigo":    RGB(0.294, 0, 0.51),
	"violet":    RGB(0.933, 0.51, 0.933),
	"turquoise": RGB(0.251, 0.878, 0.816),
	"crimson":   RGB(0.863, 0.078, 0.235),
	"orchid":    RGB(0.855, 0.439, 0.839),
	"steelblue": RGB(0.275, 0.51, 0.706),
	"slategray": RGB(0.439, 0.502, 0.565),
}

// ParseLiteral parses a literal (non-palette-reference) color: a hex
// string or a CSS color name.
func ParseLiteral(s string) (RGBA, error) {
	if s == "" {
		return RGBA{}, fmt.Errorf("theme: empty color")
	}
	if s[0] == '#' {
		return Hex(s)
	}
	if c, ok := cssNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return RGBA{}, fmt.Errorf("theme: unknown color %q", s)
}
