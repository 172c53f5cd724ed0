package guide

import (
	"fmt"
	"sync"
)

// Navigator holds the page a single reader is looking at. Each session owns
// its own Navigator.
type Navigator struct {
	mu      sync.Mutex
	current PageID
}

// NewNavigator starts at DefaultPage.
func NewNavigator() *Navigator {
	return &Navigator{current: DefaultPage}
}

// Select moves to id. An unknown id leaves the current page unchanged.
func (n *Navigator) Select(id PageID) error {
	if !Valid(id) {
		return fmt.Errorf("%w: %q", ErrInvalidPage, id)
	}
	n.mu.Lock()
	n.current = id
	n.mu.Unlock()
	return nil
}

// Current returns the selected page.
func (n *Navigator) Current() PageID {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
