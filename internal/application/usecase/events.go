package usecase

import "sync"

// Section names a part of the reader state that presenters render.
type Section int

// Sections published by Reader.
const (
	SectionForm Section = iota
	SectionFeeds
	SectionPosts
	SectionModal
	SectionError
	SectionUpdateError
)

func (s Section) String() string {
	switch s {
	case SectionForm:
		return "form"
	case SectionFeeds:
		return "feeds"
	case SectionPosts:
		return "posts"
	case SectionModal:
		return "modal"
	case SectionError:
		return "error"
	case SectionUpdateError:
		return "update_error"
	default:
		return "unknown"
	}
}

// Listener is called after a section has been fully updated.
type Listener func(Section)

type notifier struct {
	mu        sync.RWMutex
	listeners map[Section][]Listener
}

func (n *notifier) add(section Section, l Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listeners == nil {
		n.listeners = make(map[Section][]Listener)
	}
	n.listeners[section] = append(n.listeners[section], l)
}

func (n *notifier) publish(sections ...Section) {
	for _, section := range sections {
		n.mu.RLock()
		ls := append([]Listener(nil), n.listeners[section]...)
		n.mu.RUnlock()
		for _, l := range ls {
			l(section)
		}
	}
}
