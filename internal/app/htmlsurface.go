package app

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"pubguide/internal/charts"
	"pubguide/internal/content"
	"pubguide/internal/guide"
)

// markdown converts authored markdown to sanitised HTML.
type markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newMarkdown() *markdown {
	return &markdown{
		md:     goldmark.New(goldmark.WithExtensions(extension.Strikethrough, extension.Linkify)),
		policy: bluemonday.UGCPolicy(),
	}
}

func (m *markdown) render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(m.policy.SanitizeBytes(buf.Bytes())), nil
}

// htmlSurface renders a page into an HTML fragment. Selector choices come
// from the request query; unknown or missing values fall back to the first
// option.
type htmlSurface struct {
	buf     bytes.Buffer
	md      *markdown
	figures *figureCache
	path    string
	query   url.Values
	err     error
}

var _ guide.Surface = (*htmlSurface)(nil)

func newHTMLSurface(md *markdown, figures *figureCache, path string, query url.Values) *htmlSurface {
	return &htmlSurface{md: md, figures: figures, path: path, query: query}
}

// HTML returns the fragment written so far, or the first markdown error.
func (s *htmlSurface) HTML() (template.HTML, error) {
	if s.err != nil {
		return "", s.err
	}
	return template.HTML(s.buf.String()), nil
}

func (s *htmlSurface) WriteHeading(level int, text string) {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	fmt.Fprintf(&s.buf, "<h%d>%s</h%d>\n", level, template.HTMLEscapeString(text), level)
}

func (s *htmlSurface) writeMarkdown(src string) {
	out, err := s.md.render(src)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}
	s.buf.WriteString(string(out))
}

func (s *htmlSurface) WriteParagraph(md string) {
	s.writeMarkdown(md)
}

func (s *htmlSurface) WriteCallout(tone content.Tone, md string) {
	fmt.Fprintf(&s.buf, "<div class=\"callout callout-%s\">\n", template.HTMLEscapeString(string(tone)))
	s.writeMarkdown(md)
	s.buf.WriteString("</div>\n")
}

func (s *htmlSurface) WriteTable(t content.Table) {
	s.buf.WriteString("<table>\n<thead><tr>")
	for _, c := range t.Columns {
		fmt.Fprintf(&s.buf, "<th>%s</th>", template.HTMLEscapeString(c))
	}
	s.buf.WriteString("</tr></thead>\n<tbody>\n")
	for _, row := range t.Rows {
		s.buf.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&s.buf, "<td>%s</td>", template.HTMLEscapeString(cell))
		}
		s.buf.WriteString("</tr>\n")
	}
	s.buf.WriteString("</tbody>\n</table>\n")
}

func (s *htmlSurface) DrawFigure(fig *charts.Figure, caption string) error {
	svg, err := s.figures.get(fig.Name, charts.FormatSVG, "")
	if err != nil {
		return err
	}
	if i := bytes.Index(svg, []byte("<svg")); i > 0 {
		svg = svg[i:]
	}
	fmt.Fprintf(&s.buf, "<figure class=\"chart\" id=\"figure-%s\">\n", template.HTMLEscapeString(fig.Name))
	s.buf.Write(svg)
	png := "/figures/" + url.PathEscape(fig.Name) + ".png"
	if slug := strings.TrimPrefix(s.path, "/page/"); slug != "" && slug != s.path {
		png += "?" + url.Values{"page": {slug}}.Encode()
	}
	fmt.Fprintf(&s.buf, "\n<figcaption>%s <a href=\"%s\">PNG</a></figcaption>\n</figure>\n",
		template.HTMLEscapeString(caption), template.HTMLEscapeString(png))
	return nil
}

func (s *htmlSurface) OfferChoice(c guide.Choice) string {
	selected := s.query.Get(c.Key)
	if !c.Has(selected) {
		selected = c.Default()
	}

	esc := template.HTMLEscapeString
	switch c.Style {
	case content.StyleTabs:
		fmt.Fprintf(&s.buf, "<nav class=\"tabs\" id=\"%s\" aria-label=\"%s\">\n", esc(c.Key), esc(c.Prompt))
		base := pageHref(s.path, s.query)
		for _, opt := range c.Options {
			class := "tab"
			if opt == selected {
				class += " active"
			}
			href := withChoice(base, c.Key, opt) + "#" + c.Key
			fmt.Fprintf(&s.buf, "<a class=\"%s\" href=\"%s\">%s</a>\n", class, esc(href), esc(opt))
		}
		s.buf.WriteString("</nav>\n")
	default:
		fmt.Fprintf(&s.buf, "<form class=\"selector\" id=\"%s\" method=\"get\" action=\"%s#%s\">\n", esc(c.Key), esc(s.path), esc(c.Key))
		keys := make([]string, 0, len(s.query))
		for key := range s.query {
			if key != c.Key {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			for _, v := range s.query[key] {
				fmt.Fprintf(&s.buf, "<input type=\"hidden\" name=\"%s\" value=\"%s\">\n", esc(key), esc(v))
			}
		}
		fmt.Fprintf(&s.buf, "<label for=\"select-%s\">%s</label>\n", esc(c.Key), esc(c.Prompt))
		fmt.Fprintf(&s.buf, "<select id=\"select-%s\" name=\"%s\" onchange=\"this.form.submit()\">\n", esc(c.Key), esc(c.Key))
		for _, opt := range c.Options {
			sel := ""
			if opt == selected {
				sel = " selected"
			}
			fmt.Fprintf(&s.buf, "<option value=\"%s\"%s>%s</option>\n", esc(opt), sel, esc(opt))
		}
		s.buf.WriteString("</select>\n<noscript><button type=\"submit\">Show</button></noscript>\n</form>\n")
	}
	return selected
}
