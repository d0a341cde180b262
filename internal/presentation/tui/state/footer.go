package state

import (
	"strings"

	"github.com/tesso57/rssreader/internal/domain/form"
)

// FooterText returns the footer content for the current session.
func FooterText(session Session, f form.State, status, helpText string) string {
	var lines []string
	if session == AddingFeedView && f.Fetching {
		lines = append(lines, "Fetching feed...")
	}
	if s := strings.TrimSpace(status); s != "" {
		lines = append(lines, s)
	}
	if helpText != "" {
		lines = append(lines, helpText)
	}
	return strings.Join(lines, "\n")
}
