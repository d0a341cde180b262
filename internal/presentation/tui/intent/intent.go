// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/rssreader/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	AddFeed
	Open
	OpenBrowser
	Back
	DismissError
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.AddFeed):
		return Intent{Type: AddFeed}
	case key.Matches(msg, keys.OpenBrowser):
		return Intent{Type: OpenBrowser}
	case key.Matches(msg, keys.DismissError):
		return Intent{Type: DismissError}
	case key.Matches(msg, keys.Right) || key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Left) || key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	default:
		return Intent{Type: None}
	}
}
