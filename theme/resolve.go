package theme

import "fmt"

// Palette role names accepted as color references in place of a
// literal color.
const (
	RefBackground   = "background"
	RefForeground   = "foreground"
	RefGrid         = "grid"
	RefAxis         = "axis"
	RefText         = "text"
	RefLegendFill   = "legend-fill"
	RefLegendBorder = "legend-border"
)

// ResolutionError reports a style field that could not be resolved to a
// concrete value.
type ResolutionError struct {
	// Element describes the visual element being styled.
	Element string

	// Field is the style field that failed to resolve.
	Field string

	// Spec is the offending color specification, if any.
	Spec string
}

func (e *ResolutionError) Error() string {
	if e.Spec != "" {
		return fmt.Sprintf("theme: cannot resolve %s of %s from %q", e.Field, e.Element, e.Spec)
	}
	return fmt.Sprintf("theme: no value for %s of %s", e.Field, e.Element)
}

// Resolver resolves color specifications against a theme. Resolution
// is pure: resolving the same spec twice yields the same color.
type Resolver struct {
	Theme Theme
}

// Color resolves a color specification: a palette role name, a CSS
// color name, or a hex literal. element and field only label the error.
func (r Resolver) Color(spec, element, field string) (RGBA, error) {
	if spec == "" {
		return RGBA{}, &ResolutionError{Element: element, Field: field}
	}
	if c, ok := r.paletteRef(spec); ok {
		return c, nil
	}
	c, err := ParseLiteral(spec)
	if err != nil {
		return RGBA{}, &ResolutionError{Element: element, Field: field, Spec: spec}
	}
	return c, nil
}

// ColorOr resolves spec, falling back to the named palette role when
// spec is empty.
func (r Resolver) ColorOr(spec, role, element, field string) (RGBA, error) {
	if spec == "" {
		spec = role
	}
	return r.Color(spec, element, field)
}

func (r Resolver) paletteRef(spec string) (RGBA, bool) {
	p := r.Theme.Palette
	switch spec {
	case RefBackground:
		return p.Background, true
	case RefForeground:
		return p.Foreground, true
	case RefGrid:
		return p.Grid, true
	case RefAxis:
		return p.Axis, true
	case RefText:
		return p.Text, true
	case RefLegendFill:
		return p.LegendFill, true
	case RefLegendBorder:
		return p.LegendBorder, true
	}
	return RGBA{}, false
}

// SeriesColor returns the color for the i-th series that has no
// explicit color, extending the theme's cycle perceptually when the
// figure has more series than the cycle has entries.
func (r Resolver) SeriesColor(i, total int) RGBA {
	cycle := r.Theme.Series
	if len(cycle) == 0 {
		cycle = defaultSeriesLight
	}
	if total > len(cycle) {
		cycle = ExtendSeries(cycle, total)
	}
	return cycle[i%len(cycle)]
}
