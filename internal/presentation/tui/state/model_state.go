package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/rssreader/internal/domain/form"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session   Session
	Previous  Session
	FeedList  list.Model
	PostList  list.Model
	TextInput textinput.Model
	Viewport  viewport.Model
	Help      help.Model
	Spinner   spinner.Model
	Keys      KeyMap
	Width     int
	Height    int

	// Mirrors of the reader state, refreshed on change notifications.
	Form         form.State
	Banner       string
	UpdateBanner string
	PreviewTitle string
	PreviewLink  string
	Status       string
}

