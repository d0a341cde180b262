// Package mainview provides the main content area component.
package mainview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width   int
	Height  int
	Banners []string
	Header  string
	Body    string
}

// Render stacks banners, header and body inside the main area.
func Render(p Props) string {
	mainStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(1)

	var parts []string
	for _, b := range p.Banners {
		if b != "" {
			parts = append(parts, b)
		}
	}
	if p.Header != "" {
		parts = append(parts, p.Header)
	}
	if p.Body != "" {
		parts = append(parts, p.Body)
	}
	return mainStyle.Render(strings.Join(parts, "\n"))
}
