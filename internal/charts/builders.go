package charts

import "fmt"

// Figure names accepted by Build.
const (
	ImpactFactors       = "impact-factors"
	PublicationTimeline = "publication-timeline"
	AccessModels        = "access-models"
)

type sample struct {
	label string
	value float64
}

var impactFactorSamples = []sample{
	{"Nature", 49.962},
	{"Science", 47.728},
	{"Cell", 41.582},
	{"PNAS", 11.205},
	{"NEJM", 91.245},
	{"Field-specific Journal", 5.5},
}

var timelineStages = []sample{
	{"Research", 0},
	{"Writing", 12},
	{"Journal Selection", 13},
	{"Submission", 14},
	{"Initial Review", 16},
	{"Peer Review", 24},
	{"Revisions", 32},
	{"Acceptance", 36},
	{"Publication", 48},
}

var accessModelShares = []sample{
	{"Gold OA", 30},
	{"Green OA", 25},
	{"Hybrid", 20},
	{"Diamond OA", 10},
	{"Traditional", 15},
}

var accessModelColors = []string{"#f9d923", "#36AE7C", "#187498", "#4361EE", "#888888"}

const (
	barColor       = "#1f77b4"
	highlightColor = "#ff7f0e"
	timelineColor  = "#1f77b4"
	pieEmphasis    = 0.1
)

var builders = map[string]func() *Figure{
	ImpactFactors:       BuildImpactFactorChart,
	PublicationTimeline: BuildPublicationTimelineChart,
	AccessModels:        BuildAccessModelChart,
}

// Names lists the figures Build knows, in display order.
func Names() []string {
	return []string{ImpactFactors, PublicationTimeline, AccessModels}
}

// Build returns a fresh figure by name.
func Build(name string) (*Figure, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFigure, name)
	}
	return build(), nil
}

// BuildImpactFactorChart compares impact factors of flagship journals with a
// typical field-specific journal.
func BuildImpactFactorChart() *Figure {
	fig := &Figure{
		Name:   ImpactFactors,
		Kind:   KindBar,
		Title:  "Example Impact Factors of Top Journals vs. Field-Specific Journals",
		YLabel: "Impact Factor (2023)",
		YRange: &Range{Min: 0, Max: 100},
		Points: make([]Point, 0, len(impactFactorSamples)),
	}
	last := len(impactFactorSamples) - 1
	for i, s := range impactFactorSamples {
		color := barColor
		if i == last {
			color = highlightColor
		}
		fig.Points = append(fig.Points, Point{
			Label:      s.label,
			Value:      s.value,
			Color:      color,
			Annotation: oneDecimal(s.value),
		})
	}
	return fig
}

// BuildPublicationTimelineChart plots the stages of the publication process
// against the week they typically start in. Point i sits at (weeks, i).
func BuildPublicationTimelineChart() *Figure {
	fig := &Figure{
		Name:   PublicationTimeline,
		Kind:   KindTimeline,
		Title:  "Typical Timeline of Academic Publication Process",
		XLabel: "Weeks (approximate)",
		Points: make([]Point, 0, len(timelineStages)),
	}
	for _, s := range timelineStages {
		fig.Points = append(fig.Points, Point{
			Label: s.label,
			Value: s.value,
			Color: timelineColor,
		})
	}
	return fig
}

// BuildAccessModelChart shows the share of each publication model.
func BuildAccessModelChart() *Figure {
	fig := &Figure{
		Name:   AccessModels,
		Kind:   KindPie,
		Title:  "Publication Models in Academic Publishing",
		Points: make([]Point, 0, len(accessModelShares)),
	}
	var total float64
	for _, s := range accessModelShares {
		total += s.value
	}
	for i, s := range accessModelShares {
		p := Point{
			Label:      s.label,
			Value:      s.value,
			Color:      accessModelColors[i],
			Annotation: fmt.Sprintf("%.1f%%", s.value/total*100),
		}
		if s.label == "Gold OA" || s.label == "Diamond OA" {
			p.Emphasis = pieEmphasis
		}
		fig.Points = append(fig.Points, p)
	}
	return fig
}

func oneDecimal(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
