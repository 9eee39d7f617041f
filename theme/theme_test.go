package theme

import (
	"errors"
	"reflect"
	"testing"
)

func TestHexParsing(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#fff", RGB(1, 1, 1)},
		{"fff", RGB(1, 1, 1)},
		{"#000000", RGB(0, 0, 0)},
		{"#ff0000", RGB(1, 0, 0)},
		{"#00ff0080", RGBA{G: 1, A: float64(0x80) / 255}},
	}
	for _, tt := range tests {
		got, err := Hex(tt.in)
		if err != nil {
			t.Errorf("Hex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#gggggg"} {
		if _, err := Hex(in); err == nil {
			t.Errorf("Hex(%q) succeeded, want error", in)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c, _ := Hex("#89b4fa")
	if got := c.Hex(); got != "#89b4fa" {
		t.Errorf("Hex round trip = %q", got)
	}
}

func TestParseLiteral(t *testing.T) {
	c, err := ParseLiteral("Red")
	if err != nil || c != RGB(1, 0, 0) {
		t.Errorf("ParseLiteral(Red) = %+v, %v", c, err)
	}
	if _, err := ParseLiteral("notacolor"); err == nil {
		t.Error("ParseLiteral accepted nonsense name")
	}
}

func TestBuiltinThemesComplete(t *testing.T) {
	for _, name := range Names() {
		th, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		r := Resolver{Theme: th}
		for _, role := range []string{
			RefBackground, RefForeground, RefGrid, RefAxis, RefText,
			RefLegendFill, RefLegendBorder,
		} {
			c, err := r.Color(role, "test", role)
			if err != nil {
				t.Errorf("theme %q: role %q unresolved: %v", name, role, err)
			}
			_ = c
		}
		if len(th.Series) == 0 {
			t.Errorf("theme %q has no series palette", name)
		}
		if th.TitleSize <= 0 || th.TickSize <= 0 {
			t.Errorf("theme %q missing font gauges", name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("solarized"); err == nil {
		t.Error("Lookup accepted unknown theme")
	}
}

func TestResolverPrecedence(t *testing.T) {
	th, _ := Lookup("mocha")
	r := Resolver{Theme: th}

	// Literal colors bypass the palette.
	c, err := r.Color("#123456", "series", "color")
	if err != nil {
		t.Fatal(err)
	}
	if c.Hex() != "#123456" {
		t.Errorf("literal resolved to %q", c.Hex())
	}

	// Palette references resolve through the theme.
	c, err = r.Color(RefGrid, "axis", "grid")
	if err != nil {
		t.Fatal(err)
	}
	if c != th.Palette.Grid {
		t.Error("grid reference did not resolve to palette grid color")
	}

	// Empty spec with fallback role.
	c, err = r.ColorOr("", RefForeground, "legend", "border")
	if err != nil {
		t.Fatal(err)
	}
	if c != th.Palette.Foreground {
		t.Error("empty spec did not fall back to role")
	}
}

func TestResolverErrors(t *testing.T) {
	r := Resolver{}
	_, err := r.Color("", "axis", "grid")
	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *ResolutionError", err)
	}
	_, err = r.Color("bogus!", "axis", "grid")
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *ResolutionError", err)
	}
	if re.Spec != "bogus!" {
		t.Errorf("ResolutionError.Spec = %q", re.Spec)
	}
}

func TestResolveIdempotent(t *testing.T) {
	th, _ := Lookup("latte")
	r := Resolver{Theme: th}
	a, _ := r.Color(RefText, "title", "color")
	b, _ := r.Color(RefText, "title", "color")
	if a != b {
		t.Error("resolution not idempotent")
	}
}

func TestSeriesColorCycles(t *testing.T) {
	th, _ := Lookup("light")
	r := Resolver{Theme: th}
	n := len(th.Series)

	// Within the cycle, colors match the theme order.
	for i := 0; i < n; i++ {
		if r.SeriesColor(i, n) != th.Series[i] {
			t.Fatalf("series color %d does not match cycle", i)
		}
	}

	// Beyond the cycle, extended colors are distinct and deterministic.
	total := n + 4
	seen := map[string]bool{}
	for i := 0; i < total; i++ {
		c := r.SeriesColor(i, total)
		if seen[c.Hex()] {
			t.Errorf("duplicate extended series color %s at %d", c.Hex(), i)
		}
		seen[c.Hex()] = true
		if c != r.SeriesColor(i, total) {
			t.Errorf("series color %d not deterministic", i)
		}
	}
}

func TestExtendSeriesKeepsAnchors(t *testing.T) {
	base := mustHexes("#1f77b4", "#d62728")
	ext := ExtendSeries(base, 5)
	if len(ext) != 5 {
		t.Fatalf("ExtendSeries length = %d, want 5", len(ext))
	}
	if !reflect.DeepEqual(ext[:2], base) {
		t.Error("ExtendSeries modified anchor colors")
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
name = "custom"
base = "mocha"
series = ["#ff0000", "#00ff00"]

[palette]
background = "#101010"

[font]
title-size = 24.0
`)
	th, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "custom" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Palette.Background.Hex() != "#101010" {
		t.Errorf("Background = %s", th.Palette.Background.Hex())
	}
	// Inherited from mocha base.
	mocha, _ := Lookup("mocha")
	if th.Palette.Text != mocha.Palette.Text {
		t.Error("text color did not inherit from base theme")
	}
	if len(th.Series) != 2 {
		t.Errorf("series length = %d, want 2", len(th.Series))
	}
	if th.TitleSize != 24 {
		t.Errorf("TitleSize = %v, want 24", th.TitleSize)
	}
}

func TestParseTOMLErrors(t *testing.T) {
	if _, err := Parse([]byte("base = \"nope\"")); err == nil {
		t.Error("Parse accepted unknown base theme")
	}
	if _, err := Parse([]byte("series = [\"#zzz\"]")); err == nil {
		t.Error("Parse accepted invalid series color")
	}
	if _, err := Parse([]byte("= bad toml")); err == nil {
		t.Error("Parse accepted invalid TOML")
	}
}
