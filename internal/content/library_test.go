package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPages(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	titles := []string{
		"Introduction to Academic Publishing",
		"Types of Publications",
		"Types of Journals",
		"Understanding Journal Metrics",
		"Access Models: Open Access & Subscriptions",
		"The Publication Process",
		"Writing Your Research Paper",
		"Submission & Peer Review",
		"Predatory Journals: Warning Signs",
		"Publishing Ethics",
		"After Publication: Promotion & Impact",
	}
	for _, title := range titles {
		p, err := lib.Page(title)
		require.NoError(t, err, title)
		assert.NotEmpty(t, p.Heading)
		assert.NotEmpty(t, p.Blocks)
	}

	p, err := lib.Page("Types of Publications")
	require.NoError(t, err)
	assert.Equal(t, "Types of Academic Publications", p.Heading)

	_, err = lib.Page("Nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadSite(t *testing.T) {
	site := MustLoad().Site()
	assert.Equal(t, "Academic Publishing Guide", site.Title)
	assert.Contains(t, site.Disclaimer, "educational purposes only")
}

func TestRegistryLookup(t *testing.T) {
	lib := MustLoad()
	reg, err := lib.Registry(JournalMetricsRegistry)
	require.NoError(t, err)
	assert.Equal(t, JournalMetricsRegistry, reg.Name())

	_, err = lib.Registry("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func testFS(t *testing.T, page string) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{
		"d/site.yaml":        {Data: []byte("title: T\n")},
		"d/pages/01-a.yaml": {Data: []byte(page)},
	}
	regs := map[string]string{
		PublicationTypesRegistry:    "- name: A\n  description: d\n  typical_length: l\n  review_process: r\n  example: e\n  suitable_for: s\n",
		JournalMetricsRegistry:      "- name: A\n  description: d\n  publisher: p\n  strengths: s\n  limitations: l\n  example: e\n",
		PaperSectionsRegistry:       "- name: A\n  purpose: p\n  tips: t\n  example: e\n  common_mistakes: c\n",
		PeerReviewTypesRegistry:     "- name: A\n  description: d\n  advantages: a\n  disadvantages: x\n  common_in: c\n",
		WarningSignsRegistry:        "- name: A\n  signs: [s]\n",
		PromotionStrategiesRegistry: "- name: A\n  channels: [c]\n  best_practices: [b]\n",
	}
	for name, data := range regs {
		fsys["d/registries/"+name+".yaml"] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

func TestLoadFSValidatesPages(t *testing.T) {
	valid := "title: P\nblocks:\n  - text: hello\n  - selector: {key: k, registry: warning-signs, prompt: pick, style: tabs}\n"
	lib, err := loadFS(testFS(t, valid), "d")
	require.NoError(t, err)
	p, err := lib.Page("P")
	require.NoError(t, err)
	assert.Equal(t, "P", p.Heading)

	tests := map[string]string{
		"no blocks":        "title: P\nblocks: []\n",
		"two kinds":        "title: P\nblocks:\n  - {text: a, heading: b}\n",
		"unknown key":      "title: P\nblocks:\n  - {text: a, colour: b}\n",
		"bad tone":         "title: P\nblocks:\n  - callout: {tone: loud, text: a}\n",
		"ragged table":     "title: P\nblocks:\n  - table: {columns: [a, b], rows: [[x]]}\n",
		"unknown registry": "title: P\nblocks:\n  - selector: {key: k, registry: nope, prompt: p, style: tabs}\n",
		"bad style":        "title: P\nblocks:\n  - selector: {key: k, registry: warning-signs, prompt: p, style: radio}\n",
		"unnamed figure":   "title: P\nblocks:\n  - figure: {caption: c}\n",
		"no title":         "blocks:\n  - text: a\n",
		"duplicate keys":   "title: P\nblocks:\n  - selector: {key: k, registry: warning-signs, prompt: p, style: tabs}\n  - selector: {key: k, registry: warning-signs, prompt: p, style: tabs}\n",
	}
	for name, page := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadFS(testFS(t, page), "d")
			assert.Error(t, err)
		})
	}
}
