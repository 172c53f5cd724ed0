// Package terminal renders guide pages for a terminal, either once to a
// writer or interactively with bubbletea.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"pubguide/internal/charts"
	"pubguide/internal/content"
	"pubguide/internal/guide"
)

// Options configures a Surface.
type Options struct {
	// Width wraps text; zero means 80 columns.
	Width int
	// Style is a glamour style name ("auto", "dark", "light", "notty").
	Style string
	// Choices maps selector keys to the option to show.
	Choices map[string]string
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).MarginBottom(1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	topicStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	promptStyle  = lipgloss.NewStyle().Faint(true)
	footerStyle  = lipgloss.NewStyle().Faint(true)
	pickedStyle  = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	optionStyle  = lipgloss.NewStyle().Padding(0, 1)

	toneColors = map[content.Tone]lipgloss.Color{
		content.ToneInfo:    lipgloss.Color("33"),
		content.ToneWarning: lipgloss.Color("196"),
		content.ToneSuccess: lipgloss.Color("35"),
		content.ToneNote:    lipgloss.Color("244"),
	}
)

// Surface writes a page as styled terminal text.
type Surface struct {
	w       io.Writer
	md      *glamour.TermRenderer
	width   int
	choices map[string]string
	offered []guide.Choice
	err     error
}

var _ guide.Surface = (*Surface)(nil)

// NewSurface builds a surface writing to w.
func NewSurface(w io.Writer, opts Options) (*Surface, error) {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	style := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != "auto" {
		style = glamour.WithStandardStyle(opts.Style)
	}
	md, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	return &Surface{w: w, md: md, width: width, choices: opts.Choices}, nil
}

// Err returns the first write or markdown error.
func (s *Surface) Err() error {
	return s.err
}

// Offered lists the choices the last render presented, in page order.
func (s *Surface) Offered() []guide.Choice {
	return s.offered
}

func (s *Surface) write(text string) {
	if s.err != nil {
		return
	}
	if _, err := io.WriteString(s.w, text); err != nil {
		s.err = err
	}
}

func (s *Surface) WriteHeading(level int, text string) {
	switch level {
	case 1:
		s.write(titleStyle.Render(text) + "\n")
	case 2:
		s.write("\n" + sectionStyle.Render(text) + "\n")
	default:
		s.write("\n" + topicStyle.Render(text) + "\n")
	}
}

func (s *Surface) renderMarkdown(src string) string {
	out, err := s.md.Render(src)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return ""
	}
	return out
}

func (s *Surface) WriteParagraph(markdown string) {
	s.write(s.renderMarkdown(markdown))
}

func (s *Surface) WriteCallout(tone content.Tone, markdown string) {
	body := strings.Trim(s.renderMarkdown(markdown), "\n")
	box := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(toneColors[tone]).
		PaddingLeft(1).
		Width(s.width - 2)
	s.write(box.Render(body) + "\n")
}

func (s *Surface) WriteTable(t content.Table) {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Columns...).
		Rows(t.Rows...).
		Width(s.width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	s.write(tbl.String() + "\n")
}

// DrawFigure prints the figure's data as a table with proportional bars.
func (s *Surface) DrawFigure(fig *charts.Figure, caption string) error {
	if err := fig.Validate(); err != nil {
		return err
	}
	s.write("\n" + sectionStyle.Render(fig.Title) + "\n")
	s.write(figureTable(fig, s.width) + "\n")
	if caption != "" {
		s.write(promptStyle.Render(caption) + "\n")
	}
	return nil
}

func figureTable(fig *charts.Figure, width int) string {
	var peak float64
	for _, v := range fig.Values() {
		if v > peak {
			peak = v
		}
	}
	barWidth := width / 3

	valueHeader := "Value"
	switch fig.Kind {
	case charts.KindTimeline:
		valueHeader = fig.XLabel
	case charts.KindBar:
		if fig.YLabel != "" {
			valueHeader = fig.YLabel
		}
	}

	rows := make([][]string, 0, len(fig.Points))
	for _, p := range fig.Points {
		shown := p.Annotation
		if shown == "" {
			shown = fmt.Sprintf("%g", p.Value)
		}
		n := 0
		if peak > 0 {
			n = int(p.Value / peak * float64(barWidth))
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(strings.Repeat("█", n))
		label := p.Label
		if p.Emphasis > 0 {
			label += " *"
		}
		rows = append(rows, []string{label, shown, bar})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("", valueHeader, "").
		Rows(rows...).
		String()
}

// WriteAbout prints the site's about note, the sidebar text of the web host.
func (s *Surface) WriteAbout(site content.Site) {
	if site.About == "" {
		return
	}
	s.write("\n" + topicStyle.Render("About") + "\n")
	s.write(footerStyle.Width(s.width).Render(site.About) + "\n")
}

// WriteFooter prints the site credits and disclaimer below a page.
func (s *Surface) WriteFooter(site content.Site) {
	footer := footerStyle.Width(s.width)
	s.write("\n" + rule(s.width) + "\n")
	if site.Credits != "" {
		s.write(footer.Render(site.Credits) + "\n")
	}
	if site.Disclaimer != "" {
		s.write(footer.Italic(true).Render(site.Disclaimer) + "\n")
	}
}

func rule(width int) string {
	return promptStyle.Render(strings.Repeat("─", width))
}

// OfferChoice shows the options and returns the configured one, or the
// first option when none or an unknown one is configured.
func (s *Surface) OfferChoice(c guide.Choice) string {
	s.offered = append(s.offered, c)
	selected := s.choices[c.Key]
	if !c.Has(selected) {
		selected = c.Default()
	}

	var b strings.Builder
	b.WriteString("\n" + promptStyle.Render(c.Prompt) + "\n")
	if c.Style == content.StyleTabs {
		parts := make([]string, len(c.Options))
		for i, opt := range c.Options {
			if opt == selected {
				parts[i] = pickedStyle.Render(opt)
			} else {
				parts[i] = optionStyle.Render(opt)
			}
		}
		b.WriteString(lipgloss.NewStyle().Width(s.width).Render(strings.Join(parts, "│")))
	} else {
		b.WriteString(pickedStyle.Render(selected+" ▾"))
		fmt.Fprintf(&b, "  %s", promptStyle.Render(fmt.Sprintf("(%d options, --choice %s=...)", len(c.Options), c.Key)))
	}
	s.write(b.String() + "\n")
	return selected
}
