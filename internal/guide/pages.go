// Package guide drives navigation between the guide's pages and renders a
// page's content onto a host-provided Surface.
package guide

import (
	"errors"
	"fmt"
)

// ErrInvalidPage is returned for a page identifier outside Pages().
var ErrInvalidPage = errors.New("invalid page")

// PageID names a page by the label shown in the navigation menu.
type PageID string

const (
	PageIntroduction       PageID = "Introduction to Academic Publishing"
	PagePublicationTypes   PageID = "Types of Publications"
	PageJournalTypes       PageID = "Types of Journals"
	PageJournalMetrics     PageID = "Understanding Journal Metrics"
	PageAccessModels       PageID = "Access Models: Open Access & Subscriptions"
	PagePublicationProcess PageID = "The Publication Process"
	PageWriting            PageID = "Writing Your Research Paper"
	PageSubmissionReview   PageID = "Submission & Peer Review"
	PagePredatoryJournals  PageID = "Predatory Journals: Warning Signs"
	PageEthics             PageID = "Publishing Ethics"
	PageAfterPublication   PageID = "After Publication: Promotion & Impact"
)

// DefaultPage is shown to a new session.
const DefaultPage = PageIntroduction

var pageOrder = []PageID{
	PageIntroduction,
	PagePublicationTypes,
	PageJournalTypes,
	PageJournalMetrics,
	PageAccessModels,
	PagePublicationProcess,
	PageWriting,
	PageSubmissionReview,
	PagePredatoryJournals,
	PageEthics,
	PageAfterPublication,
}

var pageSet = func() map[PageID]int {
	m := make(map[PageID]int, len(pageOrder))
	for i, id := range pageOrder {
		m[id] = i
	}
	return m
}()

// Pages lists every page in menu order.
func Pages() []PageID {
	out := make([]PageID, len(pageOrder))
	copy(out, pageOrder)
	return out
}

// Valid reports whether id is one of Pages().
func Valid(id PageID) bool {
	_, ok := pageSet[id]
	return ok
}

// ParsePage converts a menu label into a PageID.
func ParsePage(label string) (PageID, error) {
	id := PageID(label)
	if !Valid(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPage, label)
	}
	return id, nil
}

// Index returns the menu position of id, or -1.
func Index(id PageID) int {
	i, ok := pageSet[id]
	if !ok {
		return -1
	}
	return i
}
