// Package content holds the guide's authored material: typed topic
// registries and page layouts, decoded once from embedded YAML.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data
var dataFS embed.FS

// Registry names referenced by page selectors.
const (
	PublicationTypesRegistry    = "publication-types"
	JournalMetricsRegistry      = "journal-metrics"
	PaperSectionsRegistry       = "paper-sections"
	PeerReviewTypesRegistry     = "peer-review-types"
	WarningSignsRegistry        = "warning-signs"
	PromotionStrategiesRegistry = "promotion-strategies"
)

// Site carries the text shown around every page.
type Site struct {
	Title      string `yaml:"title"`
	About      string `yaml:"about"`
	Credits    string `yaml:"credits"`
	Disclaimer string `yaml:"disclaimer"`
}

// Library is the full, immutable content set.
type Library struct {
	site Site

	publicationTypes    *Registry[PublicationType]
	journalMetrics      *Registry[JournalMetric]
	paperSections       *Registry[PaperSection]
	peerReviewTypes     *Registry[PeerReviewType]
	warningSigns        *Registry[WarningCategory]
	promotionStrategies *Registry[PromotionStrategy]

	registries map[string]Lookup
	order      []string
	pages      map[string]Page
}

// Load decodes and validates the embedded content.
func Load() (*Library, error) {
	return loadFS(dataFS, "data")
}

// MustLoad is Load for package initialisation; invalid embedded content is a
// build defect.
func MustLoad() *Library {
	lib, err := Load()
	if err != nil {
		panic(err)
	}
	return lib
}

func loadFS(fsys fs.FS, root string) (*Library, error) {
	lib := &Library{
		registries: make(map[string]Lookup),
		pages:      make(map[string]Page),
	}

	siteData, err := fs.ReadFile(fsys, path.Join(root, "site.yaml"))
	if err != nil {
		return nil, fmt.Errorf("read site: %w", err)
	}
	if err := yaml.Unmarshal(siteData, &lib.site); err != nil {
		return nil, fmt.Errorf("decode site: %w", err)
	}

	regDir := path.Join(root, "registries")
	if lib.publicationTypes, err = loadRegistry[PublicationType](fsys, regDir, PublicationTypesRegistry); err != nil {
		return nil, err
	}
	if lib.journalMetrics, err = loadRegistry[JournalMetric](fsys, regDir, JournalMetricsRegistry); err != nil {
		return nil, err
	}
	if lib.paperSections, err = loadRegistry[PaperSection](fsys, regDir, PaperSectionsRegistry); err != nil {
		return nil, err
	}
	if lib.peerReviewTypes, err = loadRegistry[PeerReviewType](fsys, regDir, PeerReviewTypesRegistry); err != nil {
		return nil, err
	}
	if lib.warningSigns, err = loadRegistry[WarningCategory](fsys, regDir, WarningSignsRegistry); err != nil {
		return nil, err
	}
	if lib.promotionStrategies, err = loadRegistry[PromotionStrategy](fsys, regDir, PromotionStrategiesRegistry); err != nil {
		return nil, err
	}
	for _, reg := range []Lookup{
		lib.publicationTypes,
		lib.journalMetrics,
		lib.paperSections,
		lib.peerReviewTypes,
		lib.warningSigns,
		lib.promotionStrategies,
	} {
		lib.registries[reg.Name()] = reg
		lib.order = append(lib.order, reg.Name())
	}

	pageDir := path.Join(root, "pages")
	entries, err := fs.ReadDir(fsys, pageDir)
	if err != nil {
		return nil, fmt.Errorf("read pages: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(pageDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", e.Name(), err)
		}
		page, err := decodePage(data)
		if err != nil {
			return nil, fmt.Errorf("decode page %s: %w", e.Name(), err)
		}
		if err := page.validate(lib.registries); err != nil {
			return nil, err
		}
		if _, dup := lib.pages[page.Title]; dup {
			return nil, fmt.Errorf("duplicate page %q", page.Title)
		}
		lib.pages[page.Title] = page
	}

	return lib, nil
}

func loadRegistry[T Record](fsys fs.FS, dir, name string) (*Registry[T], error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", name, err)
	}
	return decodeRegistry[T](name, data)
}

// Site returns the surrounding text shared by all pages.
func (l *Library) Site() Site {
	return l.site
}

// Registry returns the registry called name.
func (l *Library) Registry(name string) (Lookup, error) {
	reg, ok := l.registries[name]
	if !ok {
		return nil, fmt.Errorf("%w: registry %q", ErrNotFound, name)
	}
	return reg, nil
}

// Registries lists all registries in a stable order.
func (l *Library) Registries() []Lookup {
	out := make([]Lookup, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.registries[name])
	}
	return out
}

// Page returns the authored content for the page titled title.
func (l *Library) Page(title string) (Page, error) {
	p, ok := l.pages[title]
	if !ok {
		return Page{}, fmt.Errorf("%w: page %q", ErrNotFound, title)
	}
	return p, nil
}

func (l *Library) PublicationTypes() *Registry[PublicationType] { return l.publicationTypes }

func (l *Library) JournalMetrics() *Registry[JournalMetric] { return l.journalMetrics }

func (l *Library) PaperSections() *Registry[PaperSection] { return l.paperSections }

func (l *Library) PeerReviewTypes() *Registry[PeerReviewType] { return l.peerReviewTypes }

func (l *Library) WarningSigns() *Registry[WarningCategory] { return l.warningSigns }

func (l *Library) PromotionStrategies() *Registry[PromotionStrategy] { return l.promotionStrategies }
