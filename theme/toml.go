package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// themeFile is the on-disk TOML shape of a custom theme. Every field is
// optional; omitted fields inherit from the base theme.
type themeFile struct {
	Name    string   `toml:"name"`
	Base    string   `toml:"base"`
	Series  []string `toml:"series"`
	Palette struct {
		Background   string `toml:"background"`
		Foreground   string `toml:"foreground"`
		Grid         string `toml:"grid"`
		Axis         string `toml:"axis"`
		Text         string `toml:"text"`
		LegendFill   string `toml:"legend-fill"`
		LegendBorder string `toml:"legend-border"`
	} `toml:"palette"`
	Font struct {
		Family    string  `toml:"family"`
		TitleSize float64 `toml:"title-size"`
		LabelSize float64 `toml:"label-size"`
		TickSize  float64 `toml:"tick-size"`
	} `toml:"font"`
}

// Load reads a custom theme from a TOML file. Fields not present in
// the file inherit from the base theme, which defaults to "light" and
// can be overridden with a top-level `base = "mocha"` key.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %s: %w", path, err)
	}
	return t, nil
}

// Parse parses TOML theme data. See Load.
func Parse(data []byte) (Theme, error) {
	var f themeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Theme{}, err
	}

	base := f.Base
	if base == "" {
		base = "light"
	}
	t, err := Lookup(base)
	if err != nil {
		return Theme{}, err
	}
	if f.Name != "" {
		t.Name = f.Name
	}

	setters := []struct {
		spec string
		dst  *RGBA
	}{
		{f.Palette.Background, &t.Palette.Background},
		{f.Palette.Foreground, &t.Palette.Foreground},
		{f.Palette.Grid, &t.Palette.Grid},
		{f.Palette.Axis, &t.Palette.Axis},
		{f.Palette.Text, &t.Palette.Text},
		{f.Palette.LegendFill, &t.Palette.LegendFill},
		{f.Palette.LegendBorder, &t.Palette.LegendBorder},
	}
	for _, s := range setters {
		if s.spec == "" {
			continue
		}
		c, err := ParseLiteral(s.spec)
		if err != nil {
			return Theme{}, err
		}
		*s.dst = c
	}

	if len(f.Series) > 0 {
		series := make([]RGBA, len(f.Series))
		for i, spec := range f.Series {
			c, err := ParseLiteral(spec)
			if err != nil {
				return Theme{}, err
			}
			series[i] = c
		}
		t.Series = series
	}

	if f.Font.Family != "" {
		t.FontFamily = f.Font.Family
	}
	if f.Font.TitleSize > 0 {
		t.TitleSize = f.Font.TitleSize
	}
	if f.Font.LabelSize > 0 {
		t.LabelSize = f.Font.LabelSize
	}
	if f.Font.TickSize > 0 {
		t.TickSize = f.Font.TickSize
	}
	return t, nil
}
