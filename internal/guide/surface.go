package guide

import (
	"pubguide/internal/charts"
	"pubguide/internal/content"
)

// Choice asks the reader to pick one of Options. Key identifies the choice
// within a page so hosts can remember the answer.
type Choice struct {
	Key     string
	Prompt  string
	Options []string
	Style   content.SelectorStyle
}

// Default is the option picked when the reader has not chosen.
func (c Choice) Default() string {
	if len(c.Options) == 0 {
		return ""
	}
	return c.Options[0]
}

// Has reports whether option is one of Options.
func (c Choice) Has(option string) bool {
	for _, o := range c.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Surface is the output a page is rendered onto. Text arguments are
// markdown.
type Surface interface {
	WriteHeading(level int, text string)
	WriteParagraph(markdown string)
	WriteCallout(tone content.Tone, markdown string)
	WriteTable(t content.Table)
	DrawFigure(fig *charts.Figure, caption string) error
	// OfferChoice presents c and returns the selected option.
	OfferChoice(c Choice) string
}
