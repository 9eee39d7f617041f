// Package theme provides the visual defaults applied figure-wide:
// structural colors (background, grid, axes, text), series palettes and
// font gauges. A Resolver merges a theme with per-element overrides so
// every visual element ends up with a concrete style.
//
// Built-in themes are selectable by name ("light", "dark", "latte",
// "frappe", "macchiato", "mocha"); custom themes can be built in code
// or loaded from TOML files.
package theme

import (
	"fmt"
	"sort"
)

// Palette holds the structural colors of a theme. All fields must be
// set in a complete theme; the resolver reports a *ResolutionError for
// any element whose color cannot be produced.
type Palette struct {
	Background   RGBA
	Foreground   RGBA
	Grid         RGBA
	Axis         RGBA
	Text         RGBA
	LegendFill   RGBA
	LegendBorder RGBA
}

// Theme bundles a structural palette with a series color cycle and
// typography gauges.
type Theme struct {
	// Name identifies the theme; empty for ad-hoc custom themes.
	Name string

	// Palette supplies structural colors.
	Palette Palette

	// Series is the color cycle assigned to series without an
	// explicit color. When a figure has more series than entries,
	// the cycle is extended perceptually (see ExtendSeries).
	Series []RGBA

	// FontFamily is the preferred font family for all text.
	FontFamily string

	// TitleSize, LabelSize and TickSize are font sizes in pixels for
	// figure/plot titles, axis titles and tick labels.
	TitleSize float64
	LabelSize float64
	TickSize  float64
}

// defaultSeriesLight is a series cycle for light backgrounds.
var defaultSeriesLight = mustHexes(
	"#1f77b4", "#d62728", "#2ca02c", "#ff7f0e", "#9467bd",
	"#8c564b", "#e377c2", "#17becf",
)

// mustHexes converts hex literals to colors. Only used with known-good
// constants.
func mustHexes(hexes ...string) []RGBA {
	out := make([]RGBA, len(hexes))
	for i, h := range hexes {
		c, err := Hex(h)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}

// builtin returns the built-in themes keyed by name.
var builtin = map[string]Theme{
	"light": withGauges(Theme{
		Name: "light",
		Palette: Palette{
			Background:   RGB(1, 1, 1),
			Foreground:   mustHexes("#222222")[0],
			Grid:         mustHexes("#d0d0d0")[0],
			Axis:         mustHexes("#444444")[0],
			Text:         mustHexes("#222222")[0],
			LegendFill:   RGBA{R: 1, G: 1, B: 1, A: 0.9},
			LegendBorder: mustHexes("#aaaaaa")[0],
		},
		Series: defaultSeriesLight,
	}),
	"dark": withGauges(Theme{
		Name: "dark",
		Palette: Palette{
			Background:   mustHexes("#14141a")[0],
			Foreground:   mustHexes("#e6e6e6")[0],
			Grid:         mustHexes("#33333d")[0],
			Axis:         mustHexes("#9a9aa5")[0],
			Text:         mustHexes("#e6e6e6")[0],
			LegendFill:   RGBA{R: 0.08, G: 0.08, B: 0.1, A: 0.9},
			LegendBorder: mustHexes("#55555f")[0],
		},
		Series: mustHexes(
			"#6fa8dc", "#e06666", "#93c47d", "#f6b26b", "#8e7cc3",
			"#c27ba0", "#76a5af", "#ffd966",
		),
	}),
	"latte": catppuccin("latte",
		"#eff1f5", "#4c4f69", "#ccd0da", "#9ca0b0", "#4c4f69",
		"#1e66f5", "#d20f39", "#40a02b", "#df8e1d", "#fe640b",
		"#8839ef", "#179299", "#ea76cb"),
	"frappe": catppuccin("frappe",
		"#303446", "#c6d0f5", "#414559", "#737994", "#c6d0f5",
		"#8caaee", "#e78284", "#a6d189", "#e5c890", "#ef9f76",
		"#ca9ee6", "#81c8be", "#f4b8e4"),
	"macchiato": catppuccin("macchiato",
		"#24273a", "#cad3f5", "#363a4f", "#6e738d", "#cad3f5",
		"#8aadf4", "#ed8796", "#a6da95", "#eed49f", "#f5a97f",
		"#c6a0f6", "#8bd5ca", "#f5bde6"),
	"mocha": catppuccin("mocha",
		"#1e1e2e", "#cdd6f4", "#313244", "#6c7086", "#cdd6f4",
		"#89b4fa", "#f38ba8", "#a6e3a1", "#f9e2af", "#fab387",
		"#cba6f7", "#94e2d5", "#f5c2e7"),
}

// catppuccin assembles a theme from a catppuccin flavor's base, text,
// surface, overlay and accent colors.
func catppuccin(name, base, text, surface, overlay, fg string, accents ...string) Theme {
	t := Theme{
		Name: name,
		Palette: Palette{
			Background:   mustHexes(base)[0],
			Foreground:   mustHexes(fg)[0],
			Grid:         mustHexes(surface)[0],
			Axis:         mustHexes(overlay)[0],
			Text:         mustHexes(text)[0],
			LegendFill:   mustHexes(base)[0].WithAlpha(0.9),
			LegendBorder: mustHexes(overlay)[0],
		},
		Series: mustHexes(accents...),
	}
	return withGauges(t)
}

// withGauges fills in the standard typography gauges.
func withGauges(t Theme) Theme {
	t.FontFamily = "Latin Modern Roman"
	t.TitleSize = 18
	t.LabelSize = 13
	t.TickSize = 11
	return t
}

// Names returns the built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the built-in theme with the given name.
func Lookup(name string) (Theme, error) {
	t, ok := builtin[name]
	if !ok {
		return Theme{}, fmt.Errorf("theme: unknown theme %q (have %v)", name, Names())
	}
	return t, nil
}
