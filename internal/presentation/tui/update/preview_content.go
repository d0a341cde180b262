package update

import (
	"strings"

	"github.com/tesso57/rssreader/internal/application/usecase"
	"github.com/tesso57/rssreader/internal/presentation/tui/textutil"
)

func buildPreviewContent(m usecase.Modal, width int) string {
	var b strings.Builder
	desc := textutil.PlainText(m.Description)
	if desc == "" {
		desc = "(No description.)"
	}
	b.WriteString(textutil.Wrap(desc, width))
	if m.Link != "" {
		b.WriteString("\n\n")
		b.WriteString(strings.Repeat("─", min(width, 40)))
		b.WriteString("\n🔗 ")
		b.WriteString(m.Link)
	}
	return b.String()
}
