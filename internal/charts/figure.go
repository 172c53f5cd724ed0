// Package charts builds the illustrative figures shown on guide pages from
// fixed sample data and draws them with go-chart.
package charts

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrUnknownFigure is returned by Build for names outside Names().
var ErrUnknownFigure = errors.New("unknown figure")

// Kind selects how a figure is drawn.
type Kind string

const (
	KindBar      Kind = "bar"
	KindTimeline Kind = "timeline"
	KindPie      Kind = "pie"
)

// Point is one bar, stage or slice.
type Point struct {
	Label      string
	Value      float64
	Color      string
	Annotation string
	// Emphasis is the fraction a pie slice is pulled out by; zero for
	// every other kind.
	Emphasis float64
}

// Range is a fixed value axis.
type Range struct {
	Min, Max float64
}

// Figure is a renderable chart. Figures are built fresh on every call and
// may be modified by the caller without affecting later builds.
type Figure struct {
	Name   string
	Kind   Kind
	Title  string
	XLabel string
	YLabel string
	YRange *Range
	Points []Point
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Labels returns the point labels in order.
func (f *Figure) Labels() []string {
	out := make([]string, len(f.Points))
	for i, p := range f.Points {
		out[i] = p.Label
	}
	return out
}

// Values returns the point values in order.
func (f *Figure) Values() []float64 {
	out := make([]float64, len(f.Points))
	for i, p := range f.Points {
		out[i] = p.Value
	}
	return out
}

// Colors returns the point colors in order.
func (f *Figure) Colors() []string {
	out := make([]string, len(f.Points))
	for i, p := range f.Points {
		out[i] = p.Color
	}
	return out
}

// Annotations returns the non-empty annotations in point order.
func (f *Figure) Annotations() []string {
	var out []string
	for _, p := range f.Points {
		if p.Annotation != "" {
			out = append(out, p.Annotation)
		}
	}
	return out
}

// Total sums the point values.
func (f *Figure) Total() float64 {
	var sum float64
	for _, p := range f.Points {
		sum += p.Value
	}
	return sum
}

// Validate reports a figure that cannot be drawn.
func (f *Figure) Validate() error {
	if len(f.Points) == 0 {
		return fmt.Errorf("figure %s: no points", f.Name)
	}
	switch f.Kind {
	case KindBar, KindTimeline, KindPie:
	default:
		return fmt.Errorf("figure %s: unknown kind %q", f.Name, f.Kind)
	}
	for i, p := range f.Points {
		if p.Label == "" {
			return fmt.Errorf("figure %s: point %d has no label", f.Name, i)
		}
		if !hexColor.MatchString(p.Color) {
			return fmt.Errorf("figure %s: point %q has bad color %q", f.Name, p.Label, p.Color)
		}
		if p.Value < 0 {
			return fmt.Errorf("figure %s: point %q is negative", f.Name, p.Label)
		}
		if p.Emphasis != 0 && f.Kind != KindPie {
			return fmt.Errorf("figure %s: emphasis on %q outside a pie", f.Name, p.Label)
		}
	}
	if f.YRange != nil && f.YRange.Min >= f.YRange.Max {
		return fmt.Errorf("figure %s: empty y range", f.Name)
	}
	if f.Kind == KindPie && f.Total() == 0 {
		return fmt.Errorf("figure %s: pie with zero total", f.Name)
	}
	return nil
}
