package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	tests := map[PageID]string{
		PageIntroduction:     "introduction_to_academic_publishing",
		PageAccessModels:     "access_models_open_access_subscriptions",
		PageSubmissionReview: "submission_peer_review",
		PageAfterPublication: "after_publication_promotion_impact",
	}
	for id, want := range tests {
		assert.Equal(t, want, Slug(id), id)
	}
}

func TestSlugRoundTrip(t *testing.T) {
	seen := make(map[string]PageID)
	for _, id := range Pages() {
		slug := Slug(id)
		if prev, dup := seen[slug]; dup {
			t.Fatalf("slug %q shared by %q and %q", slug, prev, id)
		}
		seen[slug] = id

		got, err := PageBySlug(slug)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestPageBySlugNormalizes(t *testing.T) {
	got, err := PageBySlug("  Publishing Ethics ")
	require.NoError(t, err)
	assert.Equal(t, PageEthics, got)

	got, err = PageBySlug("Types-of-Journals")
	require.NoError(t, err)
	assert.Equal(t, PageJournalTypes, got)
}

func TestPageBySlugInvalid(t *testing.T) {
	inputs := []string{"", "../etc/passwd", "white space?", "Привет", "no_such_page"}
	for _, input := range inputs {
		_, err := PageBySlug(input)
		assert.ErrorIs(t, err, ErrInvalidPage, input)
	}
}

func TestNormalizeSlug(t *testing.T) {
	tests := map[string]string{
		"Main Page":      "main_page",
		"Peer-Review":    "peer_review",
		"  spaced out  ": "spaced_out",
		"Éthique":        "ethique",
		"Peer -- Review": "peer_review",
		"__Ethics__2024": "ethics_2024",
	}
	for input, want := range tests {
		got, err := NormalizeSlug(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestNormalizeSlugRejects(t *testing.T) {
	for _, input := range []string{"  __ ", "a/b", "Q&A", "Привет"} {
		_, err := NormalizeSlug(input)
		assert.Error(t, err, input)
	}
}

func TestFoldSlug(t *testing.T) {
	assert.Equal(t, "access_models_open_access_subscriptions", foldSlug("Access Models: Open Access & Subscriptions"))
	assert.Equal(t, "", foldSlug("!!! --- ???"))
	assert.Equal(t, "q_a", foldSlug(" Q & A! "))
}
