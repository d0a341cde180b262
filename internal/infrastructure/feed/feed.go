// Package feed provides functionality to fetch and parse RSS/Atom feeds.
package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/rssreader/internal/domain/reading"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

// UserAgent is sent with every feed request.
const UserAgent = "rssreader/1.0"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = UserAgent
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// Source downloads and parses feeds over HTTP.
type Source struct{}

// NewSource constructs a Source.
func NewSource() Source {
	return Source{}
}

// Fetch downloads url and converts it into a reading.Document.
func (Source) Fetch(ctx context.Context, url string) (*reading.Document, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("feed url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return toDocument(parsed), nil
}

func toDocument(parsed *gofeed.Feed) *reading.Document {
	if parsed == nil {
		return &reading.Document{}
	}
	doc := &reading.Document{
		Title:       strings.TrimSpace(parsed.Title),
		Description: strings.TrimSpace(parsed.Description),
		Items:       make([]reading.DocumentItem, 0, len(parsed.Items)),
	}
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		doc.Items = append(doc.Items, reading.DocumentItem{
			Title:       strings.TrimSpace(item.Title),
			Description: item.Description,
			Content:     item.Content,
			Link:        itemLink(item),
		})
	}
	return doc
}

// itemLink falls back to the first alternate link when <link> is missing.
func itemLink(item *gofeed.Item) string {
	if item.Link != "" {
		return item.Link
	}
	for _, l := range item.Links {
		if l != "" {
			return l
		}
	}
	return ""
}
