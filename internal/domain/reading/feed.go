// Package reading defines core reading models.
package reading

import "github.com/google/uuid"

// Feed represents a subscribed feed.
type Feed struct {
	ID          string
	URL         string
	Title       string
	Description string
}

// Post represents a single entry of a feed.
type Post struct {
	ID          string
	FeedID      string
	Title       string
	Description string
	Link        string
}

// DocumentItem is one entry of a parsed feed document.
type DocumentItem struct {
	Title       string
	Description string
	Content     string
	Link        string
}

// Document is a parsed feed as returned by a feed source.
type Document struct {
	Title       string
	Description string
	Items       []DocumentItem
}

// NewFeed builds a feed for url from a freshly parsed document.
func NewFeed(url string, doc *Document) Feed {
	f := Feed{ID: uuid.NewString(), URL: url}
	if doc != nil {
		f.Title = doc.Title
		f.Description = doc.Description
	}
	return f
}

// PostsFromDocument builds posts owned by feedID in document order.
// Every post gets a fresh ID.
func PostsFromDocument(feedID string, doc *Document) []Post {
	if doc == nil || len(doc.Items) == 0 {
		return nil
	}
	posts := make([]Post, len(doc.Items))
	for i, it := range doc.Items {
		desc := it.Content
		if desc == "" {
			desc = it.Description
		}
		posts[i] = Post{
			ID:          uuid.NewString(),
			FeedID:      feedID,
			Title:       it.Title,
			Description: desc,
			Link:        it.Link,
		}
	}
	return posts
}
