package guide

import (
	"fmt"
	"strings"

	"pubguide/internal/charts"
	"pubguide/internal/content"
)

const warningFlag = "🚩"

// Renderer lays out pages from a content library.
type Renderer struct {
	lib *content.Library
}

// NewRenderer checks that every page has content and that every figure a
// page places can be built.
func NewRenderer(lib *content.Library) (*Renderer, error) {
	known := make(map[string]struct{})
	for _, name := range charts.Names() {
		known[name] = struct{}{}
	}
	for _, id := range pageOrder {
		page, err := lib.Page(string(id))
		if err != nil {
			return nil, err
		}
		for _, b := range page.Blocks {
			if b.Figure == nil {
				continue
			}
			if _, ok := known[b.Figure.Name]; !ok {
				return nil, fmt.Errorf("page %q: %w: %q", id, charts.ErrUnknownFigure, b.Figure.Name)
			}
		}
	}
	return &Renderer{lib: lib}, nil
}

// Library returns the content the renderer draws from.
func (r *Renderer) Library() *content.Library {
	return r.lib
}

// Render writes page id onto s. The first error ends the pass; whatever was
// already written stays on the surface.
func (r *Renderer) Render(id PageID, s Surface) error {
	if !Valid(id) {
		return fmt.Errorf("%w: %q", ErrInvalidPage, id)
	}
	page, err := r.lib.Page(string(id))
	if err != nil {
		return err
	}

	s.WriteHeading(1, page.Heading)
	for i, b := range page.Blocks {
		if err := r.renderBlock(b, s); err != nil {
			return fmt.Errorf("page %q block %d: %w", id, i, err)
		}
	}
	return nil
}

func (r *Renderer) renderBlock(b content.Block, s Surface) error {
	switch {
	case b.Heading != "":
		s.WriteHeading(2, b.Heading)
	case b.Text != "":
		s.WriteParagraph(b.Text)
	case b.Callout != nil:
		s.WriteCallout(b.Callout.Tone, b.Callout.Text)
	case b.Table != nil:
		s.WriteTable(*b.Table)
	case b.Figure != nil:
		fig, err := charts.Build(b.Figure.Name)
		if err != nil {
			return err
		}
		return s.DrawFigure(fig, b.Figure.Caption)
	case b.Selector != nil:
		return r.renderSelector(b.Selector, s)
	}
	return nil
}

func (r *Renderer) renderSelector(sel *content.Selector, s Surface) error {
	reg, err := r.lib.Registry(sel.Registry)
	if err != nil {
		return err
	}
	topic := s.OfferChoice(Choice{
		Key:     sel.Key,
		Prompt:  sel.Prompt,
		Options: reg.Names(),
		Style:   sel.Style,
	})
	fields, err := reg.Fields(topic)
	if err != nil {
		return err
	}

	s.WriteHeading(3, topic)
	for _, f := range fields {
		s.WriteParagraph(fieldMarkdown(f, sel.Registry == content.WarningSignsRegistry))
	}
	return nil
}

func fieldMarkdown(f content.Field, flagged bool) string {
	if len(f.Items) == 0 {
		return fmt.Sprintf("**%s:** %s", f.Label, strings.TrimSpace(f.Text))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**%s:**\n\n", f.Label)
	for _, item := range f.Items {
		b.WriteString("- ")
		if flagged {
			b.WriteString(warningFlag + " ")
		}
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}
