// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// AddFeed shows the add feed form.
	AddFeed
	// Preview shows a post preview.
	Preview
	// Help shows the help dialog.
	Help
	// Quit asks for confirmation before exiting.
	Quit
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	Invalid bool
	Width   int
	Height  int
}

// Render renders the modal component centered in the given area.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	switch p.Kind {
	case AddFeed:
		style = style.Width(dialogWidth(p.Width, 60)).BorderForeground(lipgloss.Color("205"))
		if p.Invalid {
			style = style.BorderForeground(lipgloss.Color("196"))
		}
	case Preview:
		style = style.Width(dialogWidth(p.Width, 100))
	case Quit:
		style = style.BorderForeground(lipgloss.Color("205"))
	}

	content := p.Body
	if p.Title != "" {
		title := lipgloss.NewStyle().Bold(true).Render(p.Title)
		content = lipgloss.JoinVertical(lipgloss.Left, title, "", p.Body)
	}

	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, style.Render(content))
}

// dialogWidth fits a dialog to the screen, leaving room for the border.
func dialogWidth(screen, max int) int {
	w := screen - 8
	if w > max {
		w = max
	}
	if w < 20 {
		w = 20
	}
	return w
}
