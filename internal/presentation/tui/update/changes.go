package update

import (
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/rssreader/internal/application/usecase"
)

// Changes coalesces section notifications until the UI loop takes them.
// Marking never blocks and a section is pending at most once, so the
// latest state of every changed section is always delivered.
type Changes struct {
	mu    sync.Mutex
	dirty []usecase.Section
	wake  chan struct{}
}

// NewChanges returns an empty queue.
func NewChanges() *Changes {
	return &Changes{wake: make(chan struct{}, 1)}
}

// Mark records that section changed. It is safe to call from any goroutine.
func (c *Changes) Mark(section usecase.Section) {
	c.mu.Lock()
	if !slices.Contains(c.dirty, section) {
		c.dirty = append(c.dirty, section)
	}
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// Take returns the pending sections in first-marked order and clears them.
func (c *Changes) Take() []usecase.Section {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.dirty
	c.dirty = nil
	return out
}

// WaitForChange returns a command that delivers the next batch of changes.
func WaitForChange(c *Changes) tea.Cmd {
	return func() tea.Msg {
		<-c.wake
		return StateChangedMsg{Sections: c.Take()}
	}
}
