package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/tesso57/rssreader/internal/application/settings"
	"github.com/tesso57/rssreader/internal/domain/reading"
	"golang.org/x/sync/errgroup"
)

// Clock abstracts waiting so tests can drive virtual time.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// SystemClock waits on the wall clock.
type SystemClock struct{}

// After implements Clock.
func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// FetchResult is the outcome of fetching one subscribed feed in a cycle.
type FetchResult struct {
	FeedID   string
	URL      string
	Document *reading.Document
	Err      error
}

// PollLoop re-fetches subscribed feeds on a fixed delay.
type PollLoop struct {
	Reader       *Reader
	Source       FeedSource
	Interval     time.Duration
	Policy       string
	FetchTimeout time.Duration
	Clock        Clock
	Logger       zerolog.Logger
}

// NewPollLoop builds a loop that polls the reader's subscriptions through source.
func NewPollLoop(reader *Reader, source FeedSource, cfg settings.PollConfig, logger zerolog.Logger) *PollLoop {
	return &PollLoop{
		Reader:       reader,
		Source:       source,
		Interval:     cfg.Interval,
		Policy:       cfg.FailurePolicy,
		FetchTimeout: cfg.FetchTimeout,
		Clock:        SystemClock{},
		Logger:       logger.With().Str("component", "poll").Logger(),
	}
}

// Run polls immediately and then again Interval after each cycle completes,
// until ctx is cancelled.
func (l *PollLoop) Run(ctx context.Context) error {
	for {
		if err := l.Cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.Logger.Debug().Err(err).Msg("poll cycle finished with errors")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock().After(l.interval()):
		}
	}
}

// Cycle fetches the current subscriptions and merges new posts.
// Merging starts only after every fetch has settled.
func (l *PollLoop) Cycle(ctx context.Context) error {
	feeds := l.Reader.Subscriptions()
	isolated := l.Policy == settings.PolicyIsolated

	results := make([]FetchResult, len(feeds))
	var g *errgroup.Group
	gctx := ctx
	if isolated {
		g = &errgroup.Group{}
	} else {
		// Siblings are cancelled on the first failure; the cycle is discarded anyway.
		g, gctx = errgroup.WithContext(ctx)
	}
	for i, f := range feeds {
		g.Go(func() error {
			doc, err := l.fetch(gctx, f.URL)
			results[i] = FetchResult{FeedID: f.ID, URL: f.URL, Document: doc}
			if err != nil {
				results[i].Err = asFetchError(f.URL, err)
				if !isolated {
					return err
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	pollErr := collectFailures(results)
	if pollErr != nil && !isolated {
		l.Reader.FailPoll(pollErr)
		return pollErr
	}
	l.Reader.ApplyPoll(results)
	if pollErr != nil {
		l.Logger.Warn().Err(pollErr).Msg("some feeds failed to update")
		return pollErr
	}
	l.Logger.Debug().Int("feeds", len(feeds)).Msg("poll cycle complete")
	return nil
}

func (l *PollLoop) fetch(ctx context.Context, url string) (*reading.Document, error) {
	if l.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.FetchTimeout)
		defer cancel()
	}
	return l.Source.Fetch(ctx, url)
}

func (l *PollLoop) clock() Clock {
	if l.Clock == nil {
		return SystemClock{}
	}
	return l.Clock
}

// defaultInterval applies when Interval is not positive.
const defaultInterval = 10 * time.Second

func (l *PollLoop) interval() time.Duration {
	if l.Interval <= 0 {
		return defaultInterval
	}
	return l.Interval
}

// collectFailures reports genuine fetch failures. Fetches cancelled because a
// sibling already failed are left out when some other failure explains the cycle.
func collectFailures(results []FetchResult) *PollError {
	failed := make(map[string]error)
	cancelled := make(map[string]error)
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		if errors.Is(res.Err, context.Canceled) {
			cancelled[res.URL] = res.Err
			continue
		}
		failed[res.URL] = res.Err
	}
	if len(failed) == 0 {
		failed = cancelled
	}
	if len(failed) == 0 {
		return nil
	}
	return &PollError{Failed: failed}
}
