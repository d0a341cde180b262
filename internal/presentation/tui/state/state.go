// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/rssreader/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	FeedView Session = iota
	PostView
	PreviewView
	AddingFeedView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Open         key.Binding
	OpenBrowser  key.Binding
	Back         key.Binding
	Quit         key.Binding
	AddFeed      key.Binding
	DismissError key.Binding
	Help         key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.AddFeed, k.Open, k.Back}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Open, k.OpenBrowser, k.Back},
		{k.AddFeed, k.DismissError, k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:           binding(cfg.Up, "up"),
		Down:         binding(cfg.Down, "down"),
		Left:         binding(cfg.Left, "feeds"),
		Right:        binding(cfg.Right, "posts"),
		Open:         binding(cfg.Open, "preview"),
		OpenBrowser:  binding(cfg.OpenBrowser, "open in browser"),
		Back:         binding(cfg.Back, "back"),
		Quit:         binding(cfg.Quit, "quit"),
		AddFeed:      binding(cfg.AddFeed, "add feed"),
		DismissError: binding(cfg.DismissError, "dismiss error"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(keys, help),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
