// Package subscription holds the in-memory collection of subscribed feeds.
package subscription

import (
	"fmt"

	"github.com/tesso57/rssreader/internal/domain/reading"
)

// DuplicateFeedError is returned when a feed URL is already subscribed.
type DuplicateFeedError struct {
	URL string
}

func (e *DuplicateFeedError) Error() string {
	return fmt.Sprintf("feed already subscribed: %s", e.URL)
}

// UnknownFeedError is returned when a feed ID is not subscribed.
type UnknownFeedError struct {
	FeedID string
}

func (e *UnknownFeedError) Error() string {
	return fmt.Sprintf("unknown feed: %s", e.FeedID)
}

// Store keeps feeds in subscription order and posts newest first.
// It is not safe for concurrent use.
type Store struct {
	feeds []reading.Feed
	posts map[string][]reading.Post
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{posts: make(map[string][]reading.Post)}
}

// AddFeed appends a feed with every one of its initial posts, in order.
func (s *Store) AddFeed(feed reading.Feed, initial []reading.Post) error {
	if _, ok := s.FeedByURL(feed.URL); ok {
		return &DuplicateFeedError{URL: feed.URL}
	}
	posts := make([]reading.Post, len(initial))
	for i, p := range initial {
		p.FeedID = feed.ID
		posts[i] = p
	}
	s.feeds = append(s.feeds, feed)
	s.posts[feed.ID] = posts
	return nil
}

// MergeNewPosts prepends posts to a feed and returns how many were added.
// Posts whose link is already present are skipped.
func (s *Store) MergeNewPosts(feedID string, posts []reading.Post) (int, error) {
	if _, ok := s.FeedByID(feedID); !ok {
		return 0, &UnknownFeedError{FeedID: feedID}
	}
	existing := s.posts[feedID]
	fresh := uniqueByLink(feedID, posts, existing)
	if len(fresh) == 0 {
		return 0, nil
	}
	merged := make([]reading.Post, 0, len(fresh)+len(existing))
	merged = append(merged, fresh...)
	merged = append(merged, existing...)
	s.posts[feedID] = merged
	return len(fresh), nil
}

// ListFeeds returns feeds in subscription order.
func (s *Store) ListFeeds() []reading.Feed {
	return append([]reading.Feed(nil), s.feeds...)
}

// ListPosts returns posts of a feed, newest first.
func (s *Store) ListPosts(feedID string) []reading.Post {
	return append([]reading.Post(nil), s.posts[feedID]...)
}

// FeedByID looks up a feed by ID.
func (s *Store) FeedByID(id string) (reading.Feed, bool) {
	for _, f := range s.feeds {
		if f.ID == id {
			return f, true
		}
	}
	return reading.Feed{}, false
}

// FeedByURL looks up a feed by URL.
func (s *Store) FeedByURL(url string) (reading.Feed, bool) {
	for _, f := range s.feeds {
		if f.URL == url {
			return f, true
		}
	}
	return reading.Feed{}, false
}

// Post looks up a post by ID across all feeds.
func (s *Store) Post(id string) (reading.Post, bool) {
	for _, f := range s.feeds {
		for _, p := range s.posts[f.ID] {
			if p.ID == id {
				return p, true
			}
		}
	}
	return reading.Post{}, false
}

// URLs returns subscribed feed URLs in subscription order.
func (s *Store) URLs() []string {
	urls := make([]string, len(s.feeds))
	for i, f := range s.feeds {
		urls[i] = f.URL
	}
	return urls
}

// Len returns the number of subscribed feeds.
func (s *Store) Len() int {
	return len(s.feeds)
}

func uniqueByLink(feedID string, posts, existing []reading.Post) []reading.Post {
	seen := make(map[string]struct{}, len(posts)+len(existing))
	for _, p := range existing {
		seen[p.Link] = struct{}{}
	}
	out := make([]reading.Post, 0, len(posts))
	for _, p := range posts {
		if _, dup := seen[p.Link]; dup {
			continue
		}
		seen[p.Link] = struct{}{}
		p.FeedID = feedID
		out = append(out, p)
	}
	return out
}
