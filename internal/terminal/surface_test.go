package terminal

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubguide/internal/charts"
	"pubguide/internal/content"
	"pubguide/internal/guide"
)

func newRenderer(t *testing.T) *guide.Renderer {
	t.Helper()
	r, err := guide.NewRenderer(content.MustLoad())
	require.NoError(t, err)
	return r
}

func TestSurfaceRendersPage(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSurface(&buf, Options{Width: 100, Style: "notty", Choices: map[string]string{"metric": "CiteScore"}})
	require.NoError(t, err)

	require.NoError(t, newRenderer(t).Render(guide.PageJournalMetrics, s))
	require.NoError(t, s.Err())

	out := buf.String()
	assert.Contains(t, out, "Understanding Journal Metrics")
	assert.Contains(t, out, "CiteScore ▾")
	assert.Contains(t, out, "Published by")
	require.Len(t, s.Offered(), 1)
	assert.Equal(t, "metric", s.Offered()[0].Key)
}

func TestSurfaceUnknownChoiceFallsBack(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSurface(&buf, Options{Style: "notty", Choices: map[string]string{"k": "nope"}})
	require.NoError(t, err)

	got := s.OfferChoice(guide.Choice{Key: "k", Prompt: "Pick", Options: []string{"A", "B"}, Style: content.StyleTabs})
	assert.Equal(t, "A", got)
	assert.Contains(t, buf.String(), "Pick")
	assert.Contains(t, buf.String(), "B")
}

func TestSurfaceDrawFigure(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSurface(&buf, Options{Width: 90, Style: "notty"})
	require.NoError(t, err)

	require.NoError(t, s.DrawFigure(charts.BuildImpactFactorChart(), "Impact factors"))
	out := buf.String()
	assert.Contains(t, out, "NEJM")
	assert.Contains(t, out, "91.2")
	assert.Contains(t, out, "Impact Factor (2023)")
	assert.Contains(t, out, "Impact factors")

	bad := charts.BuildImpactFactorChart()
	bad.Points = nil
	assert.Error(t, s.DrawFigure(bad, ""))
}

func TestSurfaceTable(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSurface(&buf, Options{Width: 80, Style: "notty"})
	require.NoError(t, err)

	s.WriteTable(content.Table{Columns: []string{"Quartile", "Position"}, Rows: [][]string{{"Q1", "Top 25%"}}})
	assert.Contains(t, buf.String(), "Quartile")
	assert.Contains(t, buf.String(), "Top 25%")
}

func TestSurfaceFooter(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSurface(&buf, Options{Width: 100, Style: "notty"})
	require.NoError(t, err)

	site := content.MustLoad().Site()
	s.WriteAbout(site)
	s.WriteFooter(site)
	require.NoError(t, s.Err())

	out := buf.String()
	assert.Contains(t, out, "About")
	assert.Contains(t, out, "beginners")
	assert.Contains(t, out, "educational purposes only")
	assert.Contains(t, out, "researchers")

	buf.Reset()
	s.WriteAbout(content.Site{})
	assert.Empty(t, buf.String())
}

func TestBrowser(t *testing.T) {
	nav := guide.NewNavigator()
	b := NewBrowser(newRenderer(t), nav, "notty")
	assert.Equal(t, "loading…", b.View())

	b.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	assert.Contains(t, b.View(), "Introduction to Academic Publishing")
	assert.Contains(t, b.View(), "beginners")

	b.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, guide.PageIntroduction, nav.Current())

	b.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, guide.PagePublicationTypes, nav.Current())
	require.Len(t, b.offered, 1)

	b.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Review Articles", b.choices[guide.PagePublicationTypes]["type"])

	b.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	b.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	names := b.renderer.Library().PublicationTypes().Names()
	assert.Equal(t, names[len(names)-1], b.choices[guide.PagePublicationTypes]["type"])
	assert.NoError(t, b.err)

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.True(t, strings.Contains(b.View(), "tab"))
}
