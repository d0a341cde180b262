// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"github.com/tesso57/rssreader/internal/domain/form"
	"github.com/tesso57/rssreader/internal/domain/reading"
	"github.com/tesso57/rssreader/internal/domain/subscription"
)

// FeedSource abstracts downloading and parsing a feed.
type FeedSource interface {
	Fetch(ctx context.Context, url string) (*reading.Document, error)
}

// Modal is the post preview state.
type Modal struct {
	Open        bool
	PostID      string
	Title       string
	Description string
	Link        string
}

// Reader owns the reader state and serializes every mutation.
// Listeners run after the lock is released.
type Reader struct {
	mu        sync.Mutex
	source    FeedSource
	store     *subscription.Store
	form      form.State
	modal     Modal
	err       MessageKey
	updateErr MessageKey
	logger    zerolog.Logger

	events notifier
}

// NewReader constructs a Reader with an empty subscription list.
func NewReader(source FeedSource, logger zerolog.Logger) *Reader {
	return &Reader{
		source: source,
		store:  subscription.NewStore(),
		logger: logger.With().Str("component", "reader").Logger(),
	}
}

// OnChange registers l for notifications about section.
func (r *Reader) OnChange(section Section, l Listener) {
	r.events.add(section, l)
}

// InputChanged records new form input and recomputes its validation.
// Input is ignored while a submission is in flight.
func (r *Reader) InputChanged(value string) {
	r.mu.Lock()
	if r.form.InputDisabled() {
		r.mu.Unlock()
		return
	}
	r.form.Input = value
	r.form.Validation = form.Validate(value, r.store.URLs())
	r.mu.Unlock()

	r.events.publish(SectionForm)
}

// AddFeed submits the form: it fetches the entered URL and subscribes to it.
func (r *Reader) AddFeed(ctx context.Context) error {
	r.mu.Lock()
	if !r.form.CanSubmit() {
		r.mu.Unlock()
		return ErrNotSubmittable
	}
	url := r.form.Input
	r.form.Fetching = true
	r.mu.Unlock()
	r.events.publish(SectionForm)

	doc, err := r.source.Fetch(ctx, url)

	r.mu.Lock()
	r.form.Fetching = false
	if err != nil {
		r.err = FetchErrorKey
		r.mu.Unlock()
		r.logger.Warn().Err(err).Str("url", url).Msg("add feed failed")
		r.events.publish(SectionForm, SectionError)
		return asFetchError(url, err)
	}

	if err := r.addLocked(url, doc); err != nil {
		r.form.Validation = form.Validate(r.form.Input, r.store.URLs())
		r.mu.Unlock()
		r.logger.Warn().Err(err).Str("url", url).Msg("feed subscribed concurrently")
		r.events.publish(SectionForm)
		return err
	}
	r.form = form.State{}
	r.err = NoMessage
	r.mu.Unlock()

	r.logger.Info().Str("url", url).Msg("feed added")
	r.events.publish(SectionFeeds, SectionPosts, SectionForm, SectionError)
	return nil
}

// Subscribe fetches url and subscribes to it without touching the form.
func (r *Reader) Subscribe(ctx context.Context, url string) error {
	r.mu.Lock()
	if _, ok := r.store.FeedByURL(url); ok {
		r.mu.Unlock()
		return &subscription.DuplicateFeedError{URL: url}
	}
	r.mu.Unlock()

	doc, err := r.source.Fetch(ctx, url)
	if err != nil {
		r.mu.Lock()
		r.err = FetchErrorKey
		r.mu.Unlock()
		r.logger.Warn().Err(err).Str("url", url).Msg("subscribe failed")
		r.events.publish(SectionError)
		return asFetchError(url, err)
	}

	r.mu.Lock()
	err = r.addLocked(url, doc)
	if err == nil {
		// A subscribed URL may have turned the current input invalid.
		r.form.Validation = form.Validate(r.form.Input, r.store.URLs())
	}
	r.mu.Unlock()
	if err != nil {
		return err
	}

	r.logger.Info().Str("url", url).Msg("feed subscribed")
	r.events.publish(SectionFeeds, SectionPosts, SectionForm)
	return nil
}

func (r *Reader) addLocked(url string, doc *reading.Document) error {
	feed := reading.NewFeed(url, doc)
	return r.store.AddFeed(feed, reading.PostsFromDocument(feed.ID, doc))
}

// OpenPost shows a post in the modal. An unknown ID opens an empty modal
// and reports false.
func (r *Reader) OpenPost(id string) bool {
	r.mu.Lock()
	p, ok := r.store.Post(id)
	r.modal = Modal{
		Open:        true,
		PostID:      p.ID,
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
	}
	r.mu.Unlock()

	if !ok {
		r.logger.Debug().Str("post", id).Msg("preview of unknown post")
	}
	r.events.publish(SectionModal)
	return ok
}

// CloseModal hides the post preview.
func (r *Reader) CloseModal() {
	r.mu.Lock()
	r.modal = Modal{}
	r.mu.Unlock()
	r.events.publish(SectionModal)
}

// DismissError clears the add-feed error banner.
func (r *Reader) DismissError() {
	r.mu.Lock()
	changed := r.err != NoMessage
	r.err = NoMessage
	r.mu.Unlock()
	if changed {
		r.events.publish(SectionError)
	}
}

// ApplyPoll merges the successful results of a poll cycle.
// The update banner is set when any result failed and cleared otherwise.
func (r *Reader) ApplyPoll(results []FetchResult) {
	r.mu.Lock()
	added := 0
	failed := false
	for _, res := range results {
		if res.Err != nil {
			failed = true
			continue
		}
		added += r.mergeLocked(res)
	}
	prev := r.updateErr
	if failed {
		r.updateErr = UpdateErrorKey
	} else {
		r.updateErr = NoMessage
	}
	changed := prev != r.updateErr
	r.mu.Unlock()

	var sections []Section
	if added > 0 {
		r.logger.Debug().Int("posts", added).Msg("new posts merged")
		sections = append(sections, SectionPosts)
	}
	if changed {
		sections = append(sections, SectionUpdateError)
	}
	r.events.publish(sections...)
}

func (r *Reader) mergeLocked(res FetchResult) int {
	fetched := reading.PostsFromDocument(res.FeedID, res.Document)
	fresh := reading.NewPosts(r.store.ListPosts(res.FeedID), fetched)
	n, err := r.store.MergeNewPosts(res.FeedID, fresh)
	if err != nil {
		var unknown *subscription.UnknownFeedError
		if errors.As(err, &unknown) {
			r.logger.Warn().Str("feed", res.FeedID).Str("url", res.URL).Msg("skipping poll result for removed feed")
			return 0
		}
		r.logger.Error().Err(err).Str("feed", res.FeedID).Msg("merge failed")
		return 0
	}
	return n
}

// FailPoll records a poll cycle whose results were discarded.
func (r *Reader) FailPoll(err error) {
	r.mu.Lock()
	changed := r.updateErr != UpdateErrorKey
	r.updateErr = UpdateErrorKey
	r.mu.Unlock()

	r.logger.Warn().Err(err).Msg("poll cycle failed")
	if changed {
		r.events.publish(SectionUpdateError)
	}
}

// Form returns the add-feed form state.
func (r *Reader) Form() form.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.form
}

// Feeds returns subscribed feeds in subscription order.
func (r *Reader) Feeds() []reading.Feed {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.ListFeeds()
}

// Posts returns a feed's posts, newest first.
func (r *Reader) Posts(feedID string) []reading.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.ListPosts(feedID)
}

// AllPosts returns every post grouped by feed in subscription order.
func (r *Reader) AllPosts() []reading.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []reading.Post
	for _, f := range r.store.ListFeeds() {
		out = append(out, r.store.ListPosts(f.ID)...)
	}
	return out
}

// Modal returns the post preview state.
func (r *Reader) Modal() Modal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.modal
}

// Error returns the add-feed banner key.
func (r *Reader) Error() MessageKey {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// UpdateError returns the poll banner key.
func (r *Reader) UpdateError() MessageKey {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updateErr
}

// Subscriptions returns a snapshot of the feeds to poll.
func (r *Reader) Subscriptions() []reading.Feed {
	return r.Feeds()
}
