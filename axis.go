package plotive

import (
	"fmt"

	"github.com/plotive/plotive/ticks"
)

// Scale selects how an axis maps data values to positions. The
// variants are AutoScale, LinScale, LogScale and SharedScale.
type Scale interface {
	isScale()
}

// AutoScale fits a linear scale to the observed data range.
type AutoScale struct{}

func (AutoScale) isScale() {}

// LinScale is a linear scale with an explicit range.
type LinScale struct {
	Min, Max float64
}

func (LinScale) isScale() {}

// LogScale is a logarithmic scale. A zero Base means 10; Min and Max
// both zero fit the range to the data.
type LogScale struct {
	Base     float64
	Min, Max float64
}

func (LogScale) isScale() {}

// SharedScale reuses the resolved scale of another axis, keeping the
// two axes aligned.
type SharedScale struct {
	Ref AxisRef
}

func (SharedScale) isScale() {}

// AxisRef names another axis by id, title, or position. Exactly one
// selector is set; construct refs with RefID, RefTitle or RefIndex.
type AxisRef struct {
	id    string
	title string
	index int
	kind  refKind
}

type refKind int

const (
	refNone refKind = iota
	refID
	refTitle
	refIndex
)

// RefID selects an axis by its ID.
func RefID(id string) AxisRef { return AxisRef{id: id, kind: refID} }

// RefTitle selects an axis by its title.
func RefTitle(title string) AxisRef { return AxisRef{title: title, kind: refTitle} }

// RefIndex selects an axis by its position in the plot's axis list.
func RefIndex(i int) AxisRef { return AxisRef{index: i, kind: refIndex} }

// IsZero reports whether the ref selects nothing, meaning the plot's
// first axis.
func (r AxisRef) IsZero() bool { return r.kind == refNone }

func (r AxisRef) String() string {
	switch r.kind {
	case refID:
		return fmt.Sprintf("id=%q", r.id)
	case refTitle:
		return fmt.Sprintf("title=%q", r.title)
	case refIndex:
		return fmt.Sprintf("index=%d", r.index)
	}
	return "first"
}

// GridMode controls grid line drawing for one axis.
type GridMode int

const (
	// GridAuto draws major grid lines only.
	GridAuto GridMode = iota
	// GridOn draws major and minor grid lines.
	GridOn
	// GridOff draws no grid lines.
	GridOff
)

// Axis configures one axis of a plot. The zero value is a usable
// untitled axis with automatic scale and ticks.
type Axis struct {
	// ID names the axis for SharedScale and series references.
	ID string

	// Title is drawn along the axis.
	Title string

	// Scale defaults to AutoScale.
	Scale Scale

	// Ticks positions major ticks; nil means automatic. TickSpec
	// strings such as "pimultiple" or "datetime1,days" parse via
	// Ticks shortcuts.
	Ticks ticks.Locator

	// TickSpec is the string form of Ticks; ignored when Ticks is
	// set.
	TickSpec string

	// Format labels the major ticks; nil derives a formatter from
	// the locator.
	Format ticks.Formatter

	// Grid defaults to GridAuto.
	Grid GridMode

	// MinorTicks draws minor tick marks between majors.
	MinorTicks bool

	// Opposite moves the axis to the top (x) or right (y) side.
	Opposite bool
}

// locator resolves the axis' tick locator, parsing TickSpec when
// needed.
func (a *Axis) locator() (ticks.Locator, error) {
	if a.Ticks != nil {
		return a.Ticks, nil
	}
	spec := a.TickSpec
	if spec == "" {
		spec = "auto"
	}
	loc, err := ticks.ParseLocator(spec)
	if err != nil {
		return nil, fmt.Errorf("plotive: axis %q: %w", a.display(), err)
	}
	return loc, nil
}

// formatter resolves the axis' tick formatter.
func (a *Axis) formatter(loc ticks.Locator) ticks.Formatter {
	if a.Format != nil {
		return a.Format
	}
	return ticks.AutoFormatterFor(loc)
}

// display returns a human-readable name for error messages.
func (a *Axis) display() string {
	if a.ID != "" {
		return a.ID
	}
	if a.Title != "" {
		return a.Title
	}
	return "axis"
}
