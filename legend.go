package plotive

import "fmt"

// LegendPosition places a figure-level legend band on one edge of the
// figure.
type LegendPosition int

const (
	LegendTop LegendPosition = iota
	LegendBottom
	LegendLeft
	LegendRight
)

func (p LegendPosition) String() string {
	switch p {
	case LegendTop:
		return "top"
	case LegendBottom:
		return "bottom"
	case LegendLeft:
		return "left"
	case LegendRight:
		return "right"
	}
	return fmt.Sprintf("LegendPosition(%d)", int(p))
}

// ParseLegendPosition parses a figure legend position name.
func ParseLegendPosition(s string) (LegendPosition, error) {
	switch s {
	case "top":
		return LegendTop, nil
	case "bottom":
		return LegendBottom, nil
	case "left":
		return LegendLeft, nil
	case "right":
		return LegendRight, nil
	}
	return 0, fmt.Errorf("plotive: unknown legend position %q", s)
}

// PlotLegendPosition places a plot legend either outside the plot area
// (Out*) or floating inside it (In*).
type PlotLegendPosition int

const (
	LegendOutTop PlotLegendPosition = iota
	LegendOutBottom
	LegendOutLeft
	LegendOutRight
	LegendInTopLeft
	LegendInTop
	LegendInTopRight
	LegendInLeft
	LegendInRight
	LegendInBottomLeft
	LegendInBottom
	LegendInBottomRight
)

var plotLegendNames = map[PlotLegendPosition]string{
	LegendOutTop:        "out-top",
	LegendOutBottom:     "out-bottom",
	LegendOutLeft:       "out-left",
	LegendOutRight:      "out-right",
	LegendInTopLeft:     "in-top-left",
	LegendInTop:         "in-top",
	LegendInTopRight:    "in-top-right",
	LegendInLeft:        "in-left",
	LegendInRight:       "in-right",
	LegendInBottomLeft:  "in-bottom-left",
	LegendInBottom:      "in-bottom",
	LegendInBottomRight: "in-bottom-right",
}

func (p PlotLegendPosition) String() string {
	if s, ok := plotLegendNames[p]; ok {
		return s
	}
	return fmt.Sprintf("PlotLegendPosition(%d)", int(p))
}

// Inside reports whether the legend floats over the plot area.
func (p PlotLegendPosition) Inside() bool {
	return p >= LegendInTopLeft
}

// ParsePlotLegendPosition parses a plot legend position name such as
// "out-right" or "in-top-left".
func ParsePlotLegendPosition(s string) (PlotLegendPosition, error) {
	for p, name := range plotLegendNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("plotive: unknown plot legend position %q", s)
}
