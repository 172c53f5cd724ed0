package guide

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugAllowed = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

var slugPages = func() map[string]PageID {
	m := make(map[string]PageID, len(pageOrder))
	for _, id := range pageOrder {
		m[Slug(id)] = id
	}
	return m
}()

// Slug returns the URL path segment for a page, e.g. "submission_peer_review".
func Slug(id PageID) string {
	return foldSlug(string(id))
}

// PageBySlug resolves a URL path segment to its page.
func PageBySlug(raw string) (PageID, error) {
	slug, err := NormalizeSlug(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPage, err)
	}
	id, ok := slugPages[slug]
	if !ok {
		return "", fmt.Errorf("%w: slug %q", ErrInvalidPage, slug)
	}
	return id, nil
}

// NormalizeSlug folds reader input such as "Publishing Ethics" or
// "types-of-journals" into slug form. Path and query characters are refused
// rather than folded.
func NormalizeSlug(input string) (string, error) {
	if strings.ContainsAny(input, "/\\?&:#'\"") || strings.Contains(input, "..") {
		return "", errors.New("slug contains invalid path characters")
	}
	slug := foldSlug(input)
	if slug == "" {
		return "", errors.New("empty slug")
	}
	if !slugAllowed.MatchString(slug) {
		return "", errors.New("slug contains invalid characters")
	}
	return slug, nil
}

// foldSlug lowercases letters and digits, drops accents and turns every run
// of other characters into a single underscore.
func foldSlug(s string) string {
	s = stripDiacritics(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	gap := false
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			gap = b.Len() > 0
			continue
		}
		if gap {
			b.WriteByte('_')
			gap = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// stripDiacritics builds its chain per call; a transform.Chain carries
// state and handlers run concurrently.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return stripped
}
