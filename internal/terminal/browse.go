package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pubguide/internal/guide"
)

const sidebarWidth = 40

var (
	menuStyle   = lipgloss.NewStyle().Width(sidebarWidth).PaddingRight(2).BorderStyle(lipgloss.NormalBorder()).BorderRight(true)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	aboutStyle  = lipgloss.NewStyle().Faint(true).Width(sidebarWidth - 4)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Browser is the bubbletea model behind `pubguide browse`: a page menu on
// the left and the rendered page in a scrollable viewport.
type Browser struct {
	renderer *guide.Renderer
	nav      *guide.Navigator
	style    string
	pages    []guide.PageID
	cursor   int
	choices  map[guide.PageID]map[string]string
	offered  []guide.Choice
	viewport viewport.Model
	ready    bool
	err      error
}

// NewBrowser starts at the navigator's current page. style is the glamour
// style used for page text.
func NewBrowser(renderer *guide.Renderer, nav *guide.Navigator, style string) *Browser {
	b := &Browser{
		renderer: renderer,
		nav:      nav,
		style:    style,
		pages:    guide.Pages(),
		choices:  make(map[guide.PageID]map[string]string),
		viewport: viewport.New(80, 20),
	}
	if i := guide.Index(nav.Current()); i >= 0 {
		b.cursor = i
	}
	return b
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.viewport.Width = max(msg.Width-sidebarWidth-1, 20)
		b.viewport.Height = max(msg.Height-2, 5)
		b.ready = true
		b.refresh()
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "up", "k":
			b.move(-1)
			return b, nil
		case "down", "j":
			b.move(1)
			return b, nil
		case "tab":
			b.cycle(1)
			return b, nil
		case "shift+tab":
			b.cycle(-1)
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.viewport, cmd = b.viewport.Update(msg)
	return b, cmd
}

func (b *Browser) move(delta int) {
	next := b.cursor + delta
	if next < 0 || next >= len(b.pages) {
		return
	}
	if err := b.nav.Select(b.pages[next]); err != nil {
		b.err = err
		return
	}
	b.cursor = next
	b.refresh()
	b.viewport.GotoTop()
}

// cycle steps the current page's first selector through its options.
func (b *Browser) cycle(delta int) {
	if len(b.offered) == 0 {
		return
	}
	c := b.offered[0]
	page := b.nav.Current()
	picked := b.choices[page][c.Key]
	idx := 0
	for i, opt := range c.Options {
		if opt == picked {
			idx = i
		}
	}
	idx = (idx + delta + len(c.Options)) % len(c.Options)
	if b.choices[page] == nil {
		b.choices[page] = make(map[string]string)
	}
	b.choices[page][c.Key] = c.Options[idx]
	b.refresh()
}

func (b *Browser) refresh() {
	var buf strings.Builder
	s, err := NewSurface(&buf, Options{
		Width:   b.viewport.Width - 2,
		Style:   b.style,
		Choices: b.choices[b.nav.Current()],
	})
	if err != nil {
		b.err = err
		return
	}
	b.err = b.renderer.Render(b.nav.Current(), s)
	if b.err == nil {
		s.WriteFooter(b.renderer.Library().Site())
		b.err = s.Err()
	}
	b.offered = s.Offered()
	b.viewport.SetContent(buf.String())
}

func (b *Browser) View() string {
	if !b.ready {
		return "loading…"
	}

	var menu strings.Builder
	for i, id := range b.pages {
		line := "  " + string(id)
		if i == b.cursor {
			line = cursorStyle.Render("› " + string(id))
		}
		menu.WriteString(line + "\n")
	}
	if about := b.renderer.Library().Site().About; about != "" {
		menu.WriteString("\n" + aboutStyle.Render(about))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, menuStyle.Height(b.viewport.Height).Render(menu.String()), b.viewport.View())
	help := "↑/↓ page · pgup/pgdn scroll · q quit"
	if len(b.offered) > 0 {
		help = "↑/↓ page · tab " + b.offered[0].Prompt + " · pgup/pgdn scroll · q quit"
	}
	if b.err != nil {
		help = errStyle.Render(fmt.Sprintf("error: %v", b.err))
	}
	return body + "\n" + helpStyle.Render(help)
}
