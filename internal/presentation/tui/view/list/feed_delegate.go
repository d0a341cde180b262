package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FeedItem interface for items that can be rendered by FeedDelegate.
type FeedItem interface {
	list.Item
	Title() string
	Description() string
	URL() string
}

// FeedDelegate renders a feed as its title over its description.
type FeedDelegate struct {
	Styles list.DefaultItemStyles
	Theme  lipgloss.Color
}

// NewFeedDelegate creates a new FeedDelegate.
func NewFeedDelegate(themeColor lipgloss.Color) *FeedDelegate {
	styles := withItemPadding(list.NewDefaultItemStyles())
	styles.NormalDesc = styles.NormalDesc.Foreground(themeColor)
	return &FeedDelegate{
		Styles: styles,
		Theme:  themeColor,
	}
}

// Height returns the height of the item.
func (d FeedDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d FeedDelegate) Spacing() int {
	return 1
}

// Update handles messages for the delegate.
func (d FeedDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d FeedDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(FeedItem)
	if !ok {
		return
	}

	titleStyle, descStyle := d.Styles.NormalTitle, d.Styles.NormalDesc
	if index == m.Index() {
		titleStyle, descStyle = d.Styles.SelectedTitle, d.Styles.SelectedDesc
	}

	title := truncateItemText(m, titleStyle, i.Title())
	desc := i.Description()
	if desc == "" {
		desc = i.URL()
	}
	desc = truncateItemText(m, descStyle, desc)

	renderItemText(w, titleStyle, title)
	_, _ = io.WriteString(w, "\n")
	renderItemText(w, descStyle, desc)
}
