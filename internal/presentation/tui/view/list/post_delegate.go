// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// PostItem interface for items that can be rendered by PostDelegate.
type PostItem interface {
	list.Item
	Title() string
}

// PostDelegate handles rendering of post items.
type PostDelegate struct {
	Styles list.DefaultItemStyles
}

// NewPostDelegate creates a new PostDelegate.
func NewPostDelegate() *PostDelegate {
	return &PostDelegate{
		Styles: withItemPadding(list.NewDefaultItemStyles()),
	}
}

// Height returns the height of the item.
func (d *PostDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d *PostDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *PostDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *PostDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(PostItem)
	if !ok {
		return
	}
	style := itemStyle(d.Styles, m, index)
	renderItemText(w, style, truncateItemText(m, style, i.Title()))
}
