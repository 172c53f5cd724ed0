// Package catalog exports the guide's topic registries and page index for
// use outside the application: as a JSON, YAML or TOML file, or as rows in a
// MySQL or SQLite database.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"pubguide/internal/content"
	"pubguide/internal/guide"
)

// Field is one labelled value of a topic.
type Field struct {
	Label string   `json:"label" yaml:"label" toml:"label"`
	Text  string   `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Items []string `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`
}

type Topic struct {
	Name     string  `json:"name" yaml:"name" toml:"name"`
	Position int     `json:"position" yaml:"position" toml:"position"`
	Fields   []Field `json:"fields" yaml:"fields" toml:"fields"`
}

type Registry struct {
	Name   string   `json:"name" yaml:"name" toml:"name"`
	Schema []string `json:"schema" yaml:"schema" toml:"schema"`
	Topics []Topic  `json:"topics" yaml:"topics" toml:"topics"`
}

type Page struct {
	Title   string `json:"title" yaml:"title" toml:"title"`
	Heading string `json:"heading" yaml:"heading" toml:"heading"`
	Slug    string `json:"slug" yaml:"slug" toml:"slug"`
	Blocks  int    `json:"blocks" yaml:"blocks" toml:"blocks"`
}

type Totals struct {
	Registries int `json:"registries" yaml:"registries" toml:"registries"`
	Topics     int `json:"topics" yaml:"topics" toml:"topics"`
	Pages      int `json:"pages" yaml:"pages" toml:"pages"`
}

// Catalog is a snapshot of the guide's content.
type Catalog struct {
	GeneratedAt time.Time  `json:"generated_at" yaml:"generated_at" toml:"generated_at"`
	Totals      Totals     `json:"totals" yaml:"totals" toml:"totals"`
	Registries  []Registry `json:"registries" yaml:"registries" toml:"registries"`
	Pages       []Page     `json:"pages" yaml:"pages" toml:"pages"`
}

// Format is a file encoding for WriteFile.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from name, or from the extension of path when
// name is empty.
func FormatFor(name, path string) (Format, error) {
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", name)
	}
}

// Build snapshots lib.
func Build(lib *content.Library) (Catalog, error) {
	cat := Catalog{GeneratedAt: time.Now().UTC()}

	for _, reg := range lib.Registries() {
		r := Registry{Name: reg.Name(), Schema: reg.Schema()}
		for i, name := range reg.Names() {
			fields, err := reg.Fields(name)
			if err != nil {
				return Catalog{}, err
			}
			t := Topic{Name: name, Position: i, Fields: make([]Field, 0, len(fields))}
			for _, f := range fields {
				t.Fields = append(t.Fields, Field{Label: f.Label, Text: strings.TrimSpace(f.Text), Items: f.Items})
			}
			r.Topics = append(r.Topics, t)
		}
		cat.Totals.Topics += len(r.Topics)
		cat.Registries = append(cat.Registries, r)
	}

	for _, id := range guide.Pages() {
		p, err := lib.Page(string(id))
		if err != nil {
			return Catalog{}, err
		}
		cat.Pages = append(cat.Pages, Page{
			Title:   p.Title,
			Heading: p.Heading,
			Slug:    guide.Slug(id),
			Blocks:  len(p.Blocks),
		})
	}

	cat.Totals.Registries = len(cat.Registries)
	cat.Totals.Pages = len(cat.Pages)
	return cat, nil
}

// Encode serialises the catalog.
func (c Catalog) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(c, "", "  ")
	case FormatYAML:
		return yaml.Marshal(c)
	case FormatTOML:
		return toml.Marshal(c)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteFile writes the catalog to outPath, creating parent directories.
func (c Catalog) WriteFile(outPath string, format Format) error {
	data, err := c.Encode(format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(outPath, data, 0o644)
}
