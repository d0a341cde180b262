// Package console prints reader changes as plain lines for headless use.
package console

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"github.com/tesso57/rssreader/internal/application/usecase"
	"github.com/tesso57/rssreader/internal/domain/reading"
)

// Reader is the part of the reader core the watcher observes.
type Reader interface {
	OnChange(section usecase.Section, l usecase.Listener)
	Feeds() []reading.Feed
	Posts(feedID string) []reading.Post
	Error() usecase.MessageKey
	UpdateError() usecase.MessageKey
}

// Messages resolves banner keys into text.
type Messages interface {
	Text(key string) string
}

// Watcher prints every post once and reports banner changes.
type Watcher struct {
	mu       sync.Mutex
	out      io.Writer
	reader   Reader
	messages Messages
	logger   zerolog.Logger

	seen      map[string]struct{}
	err       usecase.MessageKey
	updateErr usecase.MessageKey
}

// NewWatcher returns a watcher writing to out.
func NewWatcher(out io.Writer, reader Reader, messages Messages, logger zerolog.Logger) *Watcher {
	return &Watcher{
		out:      out,
		reader:   reader,
		messages: messages,
		logger:   logger.With().Str("component", "watcher").Logger(),
		seen:     make(map[string]struct{}),
	}
}

// Start registers the watcher and prints what the reader already holds.
func (w *Watcher) Start() {
	w.reader.OnChange(usecase.SectionFeeds, w.handle)
	w.reader.OnChange(usecase.SectionPosts, w.handle)
	w.reader.OnChange(usecase.SectionError, w.handle)
	w.reader.OnChange(usecase.SectionUpdateError, w.handle)

	w.handle(usecase.SectionPosts)
	w.handle(usecase.SectionError)
	w.handle(usecase.SectionUpdateError)
}

func (w *Watcher) handle(section usecase.Section) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch section {
	case usecase.SectionFeeds, usecase.SectionPosts:
		w.printNewPosts()
	case usecase.SectionError:
		w.err = w.printBanner(w.err, w.reader.Error(), "feed")
	case usecase.SectionUpdateError:
		w.updateErr = w.printBanner(w.updateErr, w.reader.UpdateError(), "update")
	}
}

// printNewPosts writes unseen posts oldest first, feed by feed.
func (w *Watcher) printNewPosts() {
	for _, f := range w.reader.Feeds() {
		posts := w.reader.Posts(f.ID)
		for _, p := range slices.Backward(posts) {
			if _, ok := w.seen[p.ID]; ok {
				continue
			}
			w.seen[p.ID] = struct{}{}
			w.printf("[%s] %s — %s\n", feedTitle(f), postTitle(p), p.Link)
		}
	}
}

func (w *Watcher) printBanner(prev, cur usecase.MessageKey, kind string) usecase.MessageKey {
	if prev == cur {
		return cur
	}
	if cur == usecase.NoMessage {
		w.printf("! %s error cleared\n", kind)
		return cur
	}
	w.printf("! %s\n", w.text(cur))
	return cur
}

func (w *Watcher) text(key usecase.MessageKey) string {
	if w.messages == nil {
		return string(key)
	}
	return w.messages.Text(string(key))
}

func (w *Watcher) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(w.out, format, args...); err != nil {
		w.logger.Error().Err(err).Msg("write failed")
	}
}

func feedTitle(f reading.Feed) string {
	if f.Title != "" {
		return f.Title
	}
	return f.URL
}

func postTitle(p reading.Post) string {
	if p.Title != "" {
		return p.Title
	}
	return "(untitled)"
}
