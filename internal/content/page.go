package content

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tone classifies a callout.
type Tone string

const (
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
	ToneSuccess Tone = "success"
	ToneNote    Tone = "note"
)

// SelectorStyle is the kind of control a selector is offered as.
type SelectorStyle string

const (
	StyleDropdown SelectorStyle = "dropdown"
	StyleTabs     SelectorStyle = "tabs"
)

// BlockKind names the single populated member of a Block.
type BlockKind string

const (
	KindHeading  BlockKind = "heading"
	KindText     BlockKind = "text"
	KindCallout  BlockKind = "callout"
	KindTable    BlockKind = "table"
	KindFigure   BlockKind = "figure"
	KindSelector BlockKind = "selector"
)

// Page is the authored content of one navigable page.
type Page struct {
	Title   string  `yaml:"title"`
	Heading string  `yaml:"heading"`
	Blocks  []Block `yaml:"blocks"`
}

// Block is one unit of page layout. Exactly one member is set.
type Block struct {
	Heading  string     `yaml:"heading,omitempty"`
	Text     string     `yaml:"text,omitempty"`
	Callout  *Callout   `yaml:"callout,omitempty"`
	Table    *Table     `yaml:"table,omitempty"`
	Figure   *FigureRef `yaml:"figure,omitempty"`
	Selector *Selector  `yaml:"selector,omitempty"`
}

// Callout is highlighted prose such as a tip or a warning.
type Callout struct {
	Tone Tone   `yaml:"tone"`
	Text string `yaml:"text"`
}

// Table is a static grid with a header row.
type Table struct {
	Columns []string   `yaml:"columns"`
	Rows    [][]string `yaml:"rows"`
}

// FigureRef places a named chart on the page.
type FigureRef struct {
	Name    string `yaml:"name"`
	Caption string `yaml:"caption"`
}

// Selector reveals one record of a registry chosen by the reader.
type Selector struct {
	Key      string        `yaml:"key"`
	Registry string        `yaml:"registry"`
	Prompt   string        `yaml:"prompt"`
	Style    SelectorStyle `yaml:"style"`
}

// Kind reports which member of the block is set, or an error when none or
// several are.
func (b Block) Kind() (BlockKind, error) {
	var kinds []BlockKind
	if b.Heading != "" {
		kinds = append(kinds, KindHeading)
	}
	if b.Text != "" {
		kinds = append(kinds, KindText)
	}
	if b.Callout != nil {
		kinds = append(kinds, KindCallout)
	}
	if b.Table != nil {
		kinds = append(kinds, KindTable)
	}
	if b.Figure != nil {
		kinds = append(kinds, KindFigure)
	}
	if b.Selector != nil {
		kinds = append(kinds, KindSelector)
	}
	switch len(kinds) {
	case 0:
		return "", errors.New("empty block")
	case 1:
		return kinds[0], nil
	default:
		return "", fmt.Errorf("block sets %v, want exactly one", kinds)
	}
}

func decodePage(data []byte) (Page, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Page
	if err := dec.Decode(&p); err != nil {
		return Page{}, err
	}
	if p.Title == "" {
		return Page{}, errors.New("page without title")
	}
	if p.Heading == "" {
		p.Heading = p.Title
	}
	return p, nil
}

// validate checks block shapes and that every selector names a known
// registry.
func (p Page) validate(registries map[string]Lookup) error {
	if len(p.Blocks) == 0 {
		return fmt.Errorf("page %q: no blocks", p.Title)
	}
	keys := make(map[string]struct{})
	for i, b := range p.Blocks {
		kind, err := b.Kind()
		if err != nil {
			return fmt.Errorf("page %q block %d: %w", p.Title, i, err)
		}
		switch kind {
		case KindCallout:
			switch b.Callout.Tone {
			case ToneInfo, ToneWarning, ToneSuccess, ToneNote:
			default:
				return fmt.Errorf("page %q block %d: unknown tone %q", p.Title, i, b.Callout.Tone)
			}
		case KindTable:
			if len(b.Table.Columns) == 0 {
				return fmt.Errorf("page %q block %d: table without columns", p.Title, i)
			}
			for r, row := range b.Table.Rows {
				if len(row) != len(b.Table.Columns) {
					return fmt.Errorf("page %q block %d: row %d has %d cells, want %d", p.Title, i, r, len(row), len(b.Table.Columns))
				}
			}
		case KindFigure:
			if b.Figure.Name == "" {
				return fmt.Errorf("page %q block %d: figure without name", p.Title, i)
			}
		case KindSelector:
			s := b.Selector
			if _, ok := registries[s.Registry]; !ok {
				return fmt.Errorf("page %q block %d: unknown registry %q", p.Title, i, s.Registry)
			}
			if s.Style != StyleDropdown && s.Style != StyleTabs {
				return fmt.Errorf("page %q block %d: unknown selector style %q", p.Title, i, s.Style)
			}
			if s.Key == "" {
				return fmt.Errorf("page %q block %d: selector without key", p.Title, i)
			}
			if _, dup := keys[s.Key]; dup {
				return fmt.Errorf("page %q block %d: duplicate selector key %q", p.Title, i, s.Key)
			}
			keys[s.Key] = struct{}{}
		}
	}
	return nil
}
