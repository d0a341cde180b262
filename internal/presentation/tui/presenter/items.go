// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/rssreader/internal/domain/reading"
	"github.com/tesso57/rssreader/internal/presentation/tui/textutil"
)

// Item is a view model for list items.
type Item struct {
	ID            string
	TitleText     string
	Desc          string
	Link          string
	Feed          string
	FeedTitleText string
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the item title.
func (i *Item) Title() string { return i.TitleText }

// Description returns a one-line description for list display.
func (i *Item) Description() string { return i.Desc }

// URL returns the item's URL.
func (i *Item) URL() string { return i.Link }

// FeedTitle returns the feed title for the item.
func (i *Item) FeedTitle() string { return i.FeedTitleText }

// BuildFeedListItems builds list items for the feed list in subscription order.
func BuildFeedListItems(feeds []reading.Feed) []list.Item {
	items := make([]list.Item, len(feeds))
	for i, f := range feeds {
		title := f.Title
		if title == "" {
			title = f.URL
		}
		items[i] = &Item{
			ID:            f.ID,
			TitleText:     fmt.Sprintf("%d. %s", i+1, textutil.SingleLine(title)),
			Desc:          textutil.SingleLine(textutil.PlainText(f.Description)),
			Link:          f.URL,
			Feed:          f.ID,
			FeedTitleText: f.Title,
		}
	}
	return items
}

// ApplyFeedList updates the list model with feed items, keeping the cursor
// on the same feed when it still exists.
func ApplyFeedList(model *list.Model, feeds []reading.Feed) {
	selected := ""
	if it, ok := model.SelectedItem().(*Item); ok {
		selected = it.ID
	}
	model.SetItems(BuildFeedListItems(feeds))
	for i, f := range feeds {
		if f.ID == selected {
			model.Select(i)
			return
		}
	}
}

// BuildPostListItems builds list items for posts, newest first.
func BuildPostListItems(feed reading.Feed, posts []reading.Post) []list.Item {
	result := make([]list.Item, len(posts))
	for i, p := range posts {
		title := textutil.SingleLine(p.Title)
		if title == "" {
			title = p.Link
		}
		result[i] = &Item{
			ID:            p.ID,
			TitleText:     title,
			Desc:          textutil.SingleLine(textutil.PlainText(p.Description)),
			Link:          p.Link,
			Feed:          p.FeedID,
			FeedTitleText: feed.Title,
		}
	}
	return result
}

// ApplyPostList replaces the post list, keeping the cursor on the same post.
func ApplyPostList(model *list.Model, feed reading.Feed, posts []reading.Post) {
	selected := ""
	if it, ok := model.SelectedItem().(*Item); ok && it.Feed == feed.ID {
		selected = it.ID
	}
	model.SetItems(BuildPostListItems(feed, posts))
	model.Title = feed.Title
	if selected == "" {
		model.ResetSelected()
		return
	}
	for i, p := range posts {
		if p.ID == selected {
			model.Select(i)
			return
		}
	}
	model.ResetSelected()
}
