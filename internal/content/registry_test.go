package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySchemas(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	want := map[string][]string{
		PublicationTypesRegistry:    {"Description", "Typical Length", "Review Process", "Example", "Best For"},
		JournalMetricsRegistry:      {"Description", "Published by", "Strengths", "Limitations", "Examples"},
		PaperSectionsRegistry:       {"Purpose", "Tips", "Example", "Common Mistakes"},
		PeerReviewTypesRegistry:     {"Description", "Advantages", "Disadvantages", "Common in"},
		WarningSignsRegistry:        {"Warning signs"},
		PromotionStrategiesRegistry: {"Channels", "Best practices"},
	}
	regs := lib.Registries()
	require.Len(t, regs, len(want))
	for _, reg := range regs {
		if diff := cmp.Diff(want[reg.Name()], reg.Schema()); diff != "" {
			t.Errorf("%s schema mismatch (-want +got):\n%s", reg.Name(), diff)
		}
	}
}

func TestRegistryNonexistentTopic(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	for _, reg := range lib.Registries() {
		_, err := reg.Fields("__nonexistent__")
		assert.ErrorIs(t, err, ErrNotFound, reg.Name())
	}
	_, err = lib.PaperSections().Get("__nonexistent__")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistryGet(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	rec, err := lib.PublicationTypes().Get("Review Articles")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.TypicalLength)

	rev, err := lib.PeerReviewTypes().Get("Double-blind")
	require.NoError(t, err)
	assert.NotEmpty(t, rev.Advantages)

	names := lib.PaperSections().Names()
	assert.Equal(t, []string{"Title", "Abstract", "Introduction", "Methods", "Results", "Discussion", "Conclusion", "References"}, names)
	names[0] = "changed"
	assert.Equal(t, "Title", lib.PaperSections().Names()[0])
	assert.Equal(t, 8, lib.PaperSections().Len())
}

func TestRegistryEveryRecordHasEveryField(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	for _, reg := range lib.Registries() {
		require.NotEmpty(t, reg.Names(), reg.Name())
		for _, topic := range reg.Names() {
			fields, err := reg.Fields(topic)
			require.NoError(t, err)
			require.Len(t, fields, len(reg.Schema()))
			for _, f := range fields {
				assert.False(t, f.empty(), "%s/%s/%s", reg.Name(), topic, f.Label)
			}
		}
	}
}

func TestDecodeRegistryRejects(t *testing.T) {
	tests := map[string]string{
		"empty":         ``,
		"empty list":    `[]`,
		"unknown field": "- name: A\n  purpose: p\n  tips: t\n  example: e\n  common_mistakes: c\n  colour: red\n",
		"missing field": "- name: A\n  purpose: p\n  tips: t\n  example: e\n",
		"duplicate":     "- name: A\n  purpose: p\n  tips: t\n  example: e\n  common_mistakes: c\n- name: A\n  purpose: p\n  tips: t\n  example: e\n  common_mistakes: c\n",
		"unnamed":       "- purpose: p\n  tips: t\n  example: e\n  common_mistakes: c\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decodeRegistry[PaperSection]("paper-sections", []byte(data))
			assert.Error(t, err)
		})
	}
}

func TestDecodeRegistryKeepsOrder(t *testing.T) {
	data := "- name: B\n  signs: [x]\n- name: A\n  signs: [y, z]\n"
	reg, err := decodeRegistry[WarningCategory]("warning-signs", []byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, reg.Names())

	rec, err := reg.Get("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "z"}, rec.Signs)
}
