package charts

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrUnsupportedFormat is returned for output formats other than SVG and PNG.
var ErrUnsupportedFormat = errors.New("unsupported figure format")

// Format is an image encoding a figure can be rendered to.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

const (
	renderWidth  = 800
	renderHeight = 480
)

// ParseFormat maps a file extension (with or without the dot) to a Format.
func ParseFormat(ext string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(ext, "."))); f {
	case FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ContentType is the MIME type of the encoding.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() (chart.RendererProvider, error) {
	switch f {
	case FormatSVG:
		return chart.SVG, nil
	case FormatPNG:
		return chart.PNG, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// Render draws the figure to w.
func (f *Figure) Render(w io.Writer, format Format) error {
	if err := f.Validate(); err != nil {
		return err
	}
	rp, err := format.provider()
	if err != nil {
		return err
	}

	switch f.Kind {
	case KindBar:
		bc := f.barChart()
		err = bc.Render(rp, w)
	case KindPie:
		pc := f.pieChart()
		err = pc.Render(rp, w)
	default:
		c := f.timelineChart()
		err = c.Render(rp, w)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", f.Name, err)
	}
	return nil
}

func hexColorOf(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func (f *Figure) barChart() chart.BarChart {
	bars := make([]chart.Value, 0, len(f.Points))
	for _, p := range f.Points {
		label := p.Label
		if p.Annotation != "" {
			label = fmt.Sprintf("%s (%s)", p.Label, p.Annotation)
		}
		bars = append(bars, chart.Value{
			Label: label,
			Value: p.Value,
			Style: chart.Style{
				FillColor:   hexColorOf(p.Color),
				StrokeColor: hexColorOf(p.Color),
				StrokeWidth: 1,
			},
		})
	}

	yaxis := chart.YAxis{Name: f.YLabel}
	if f.YRange != nil {
		yaxis.Range = &chart.ContinuousRange{Min: f.YRange.Min, Max: f.YRange.Max}
		yaxis.Ticks = evenTicks(f.YRange.Min, f.YRange.Max, 5)
	}

	return chart.BarChart{
		Title:      f.Title,
		Width:      renderWidth,
		Height:     renderHeight,
		BarWidth:   70,
		BarSpacing: 40,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		YAxis:      yaxis,
		Bars:       bars,
	}
}

// pieChart outlines emphasised slices with a heavy dark stroke; go-chart
// cannot offset a slice from the centre.
func (f *Figure) pieChart() chart.PieChart {
	values := make([]chart.Value, 0, len(f.Points))
	for _, p := range f.Points {
		style := chart.Style{
			FillColor:   hexColorOf(p.Color),
			StrokeColor: drawing.ColorWhite,
			StrokeWidth: 1,
		}
		if p.Emphasis > 0 {
			style.StrokeColor = drawing.ColorBlack
			style.StrokeWidth = 2 + 40*p.Emphasis
		}
		label := p.Label
		if p.Annotation != "" {
			label = p.Label + " " + p.Annotation
		}
		values = append(values, chart.Value{Label: label, Value: p.Value, Style: style})
	}
	return chart.PieChart{
		Title:  f.Title,
		Width:  renderWidth,
		Height: renderHeight,
		Values: values,
	}
}

func (f *Figure) timelineChart() chart.Chart {
	n := len(f.Points)
	xs := make([]float64, n)
	ys := make([]float64, n)
	ticks := make([]chart.Tick, n)
	notes := make([]chart.Value2, n)
	for i, p := range f.Points {
		xs[i] = p.Value
		ys[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i)}
		notes[i] = chart.Value2{XValue: p.Value, YValue: float64(i), Label: p.Label}
	}
	maxX := xs[n-1]
	for _, x := range xs {
		if x > maxX {
			maxX = x
		}
	}

	line := hexColorOf(f.Points[0].Color)
	return chart.Chart{
		Title:      f.Title,
		Width:      renderWidth,
		Height:     renderHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  f.XLabel,
			Range: &chart.ContinuousRange{Min: -2, Max: maxX + 6},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: -1, Max: float64(n)},
			Ticks: ticks,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    f.Title,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: line,
					StrokeWidth: 2,
					DotColor:    line,
					DotWidth:    5,
				},
			},
			chart.AnnotationSeries{Annotations: notes},
		},
	}
}

func evenTicks(lo, hi float64, steps int) []chart.Tick {
	ticks := make([]chart.Tick, 0, steps+1)
	step := (hi - lo) / float64(steps)
	for i := 0; i <= steps; i++ {
		v := lo + float64(i)*step
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%g", v)})
	}
	return ticks
}
