// Package banner renders the error banners above the post list.
package banner

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind selects the banner color.
type Kind int

const (
	// Update is the standing poll failure banner.
	Update Kind = iota
	// Fetch is the dismissible add-feed failure banner.
	Fetch
)

// Props defines the properties for the banner component.
type Props struct {
	Kind  Kind
	Text  string
	Hint  string
	Width int
}

// Render returns an empty string when there is no text.
func Render(p Props) string {
	if p.Text == "" {
		return ""
	}
	color := lipgloss.Color("214")
	if p.Kind == Fetch {
		color = lipgloss.Color("196")
	}
	style := lipgloss.NewStyle().
		Foreground(color).
		Bold(true)
	if p.Width > 0 {
		style = style.Width(p.Width)
	}
	text := "⚠ " + p.Text
	if p.Hint != "" {
		text += " " + lipgloss.NewStyle().Faint(true).Render(p.Hint)
	}
	return style.Render(text)
}
