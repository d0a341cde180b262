// Package header provides the main area header component.
package header

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible   bool
	Link      string
	FeedTitle string
	Width     int
}

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	lines := []string{"🏷️  " + p.FeedTitle}
	if p.Link != "" {
		lines = append(lines, "🔗 "+p.Link)
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	if p.Width > 0 {
		style = style.MaxWidth(p.Width)
	}
	return style.Render(strings.Join(lines, "\n"))
}
